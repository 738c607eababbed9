package service

import (
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/repository"
	"ai_edu_navigator/internal/util"
	"ai_edu_navigator/pkg/logger"
	"ai_edu_navigator/pkg/monitoring"
	"ai_edu_navigator/pkg/tracing"
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticating  SessionState = "authenticating"
	StateAuthenticated   SessionState = "authenticated"
)

// SessionStore 单个设备的会话：内存中至多一个用户记录，每次变更整体写回存储
type SessionStore struct {
	DeviceID string
	Storage  repository.SessionStorage

	// Now 和 RandIntn 在测试中可替换
	Now      func() time.Time
	RandIntn func(n int) int

	mu             sync.Mutex
	latency        Latency
	user           *model.User
	loading        bool
	authenticating bool

	// initMu 串行化首次读取；只有读取成功后 loaded 才置位
	initMu sync.Mutex
	loaded bool

	lastUsed atomic.Int64
}

func NewSessionStore(deviceID string, storage repository.SessionStorage, latency Latency) *SessionStore {
	if latency == nil {
		latency = NoLatency{}
	}
	return &SessionStore{
		DeviceID: deviceID,
		Storage:  storage,
		Now:      time.Now,
		RandIntn: rand.Intn,
		latency:  latency,
		loading:  true,
	}
}

// Init 从存储读取会话，成功后不再重复读取；读取失败时下次调用重试。内容损坏时删除并视为未登录
func (s *SessionStore) Init(ctx context.Context) error {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.loaded {
		return nil
	}
	if err := s.load(ctx); err != nil {
		return err
	}
	s.loaded = true
	return nil
}

func (s *SessionStore) load(ctx context.Context) error {
	user, err := s.Storage.Load(ctx)
	if err != nil && !util.IsStorageParseError(err) {
		logger.Log.Error("读取会话失败", zap.String("device", s.DeviceID), zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		logger.Log.Warn("丢弃无法解析的会话", zap.String("device", s.DeviceID), zap.Error(err))
		if cerr := s.Storage.Clear(ctx); cerr != nil {
			logger.Log.Error("清除损坏会话失败", zap.String("device", s.DeviceID), zap.Error(cerr))
		}
		return nil
	}

	s.user = user
	if user != nil {
		logger.Log.Debug("会话已恢复", zap.String("device", s.DeviceID), zap.String("user", user.ID))
	}
	return nil
}

// User 返回当前用户的副本，未登录时为 nil
func (s *SessionStore) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// IsLoading 初始读取或登录/注册进行中
func (s *SessionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading || s.authenticating
}

func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.authenticating:
		return StateAuthenticating
	case s.user != nil:
		return StateAuthenticated
	default:
		return StateUnauthenticated
	}
}

func (s *SessionStore) SetLatency(l Latency) {
	if l == nil {
		l = NoLatency{}
	}
	s.mu.Lock()
	s.latency = l
	s.mu.Unlock()
}

func (s *SessionStore) Login(ctx context.Context, email, password string) (*model.User, error) {
	return s.authenticate(ctx, OpLogin, func() (*model.User, error) {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		return &model.User{
			ID:       s.newUserID(),
			Email:    email,
			Name:     email[:strings.Index(email, "@")],
			Provider: model.ProviderEmail,
		}, nil
	})
}

func (s *SessionStore) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	return s.authenticate(ctx, OpRegister, func() (*model.User, error) {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		return &model.User{
			ID:       s.newUserID(),
			Email:    email,
			Name:     name,
			Provider: model.ProviderEmail,
		}, nil
	})
}

func (s *SessionStore) LoginWithGithub(ctx context.Context) (*model.User, error) {
	return s.authenticate(ctx, OpLoginGithub, func() (*model.User, error) {
		return &model.User{
			ID:       s.newUserID(),
			Email:    fmt.Sprintf("github_user_%d@example.com", s.RandIntn(1000)),
			Name:     fmt.Sprintf("GitHub User %d", s.RandIntn(1000)),
			Provider: model.ProviderGithub,
		}, nil
	})
}

func (s *SessionStore) LoginWithLinkedin(ctx context.Context) (*model.User, error) {
	return s.authenticate(ctx, OpLoginLinkedin, func() (*model.User, error) {
		return &model.User{
			ID:       s.newUserID(),
			Email:    fmt.Sprintf("linkedin_user_%d@example.com", s.RandIntn(1000)),
			Name:     fmt.Sprintf("LinkedIn User %d", s.RandIntn(1000)),
			Provider: model.ProviderLinkedin,
		}, nil
	})
}

// authenticate 先等待模拟延迟，再校验并构造用户，最后先写存储再替换内存状态
func (s *SessionStore) authenticate(ctx context.Context, op Operation, build func() (*model.User, error)) (user *model.User, err error) {
	ctx, span := tracing.StartSpan(ctx, "SessionStore."+string(op))
	defer span.End()
	defer func() { monitoring.ObserveSessionOp(string(op), err) }()

	latency, err := s.beginAuth()
	if err != nil {
		return nil, err
	}
	defer s.endAuth()

	if err := latency.Simulate(op); err != nil {
		logger.Log.Warn("模拟请求失败", zap.String("device", s.DeviceID), zap.String("op", string(op)), zap.Error(err))
		if op == OpLoginGithub || op == OpLoginLinkedin {
			return nil, fmt.Errorf("%w: %v", util.ErrProviderFailed, err)
		}
		return nil, err
	}

	user, err = build()
	if err != nil {
		return nil, err
	}
	user.SessionID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Storage.Save(ctx, user); err != nil {
		logger.Log.Error("保存会话失败", zap.String("device", s.DeviceID), zap.Error(err))
		return nil, err
	}
	s.user = user

	logger.Log.Info("用户已登录",
		zap.String("device", s.DeviceID),
		zap.String("user", user.ID),
		zap.String("provider", string(user.Provider)),
	)
	return user.Clone(), nil
}

func (s *SessionStore) beginAuth() (Latency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.authenticating {
		return nil, util.ErrAuthInProgress
	}
	s.authenticating = true
	return s.latency, nil
}

func (s *SessionStore) endAuth() {
	s.mu.Lock()
	s.authenticating = false
	s.mu.Unlock()
}

func (s *SessionStore) Logout(ctx context.Context) (err error) {
	defer func() { monitoring.ObserveSessionOp("logout", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Storage.Clear(ctx); err != nil {
		logger.Log.Error("清除会话失败", zap.String("device", s.DeviceID), zap.Error(err))
		return err
	}
	if s.user != nil {
		logger.Log.Info("用户已退出", zap.String("device", s.DeviceID), zap.String("user", s.user.ID))
	}
	s.user = nil
	return nil
}

// UpdatePreferences 整体替换偏好；未登录时什么都不做并返回 nil
func (s *SessionStore) UpdatePreferences(ctx context.Context, prefs model.Preferences) (*model.User, error) {
	if prefs.SchemaVersion == 0 {
		prefs.SchemaVersion = model.PreferencesSchemaVersion
	}
	return s.mutate(ctx, "update_preferences", func(u *model.User) bool {
		u.Preferences = &prefs
		return true
	})
}

func (s *SessionStore) UpdateSettings(ctx context.Context, settings model.Settings) (*model.User, error) {
	return s.mutate(ctx, "update_settings", func(u *model.User) bool {
		u.Settings = &settings
		return true
	})
}

// AddCourseToQueue 幂等，已在队列中时不写存储
func (s *SessionStore) AddCourseToQueue(ctx context.Context, courseID int) (*model.User, error) {
	return s.mutate(ctx, "queue_add", func(u *model.User) bool {
		if u.IsInQueue(courseID) {
			return false
		}
		u.QueuedCourses = append(u.QueuedCourses, courseID)
		return true
	})
}

func (s *SessionStore) RemoveCourseFromQueue(ctx context.Context, courseID int) (*model.User, error) {
	return s.mutate(ctx, "queue_remove", func(u *model.User) bool {
		idx := slices.Index(u.QueuedCourses, courseID)
		if idx < 0 {
			return false
		}
		u.QueuedCourses = slices.Delete(u.QueuedCourses, idx, idx+1)
		// 与 omitempty 的序列化结果保持一致
		if len(u.QueuedCourses) == 0 {
			u.QueuedCourses = nil
		}
		return true
	})
}

func (s *SessionStore) IsInQueue(courseID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.IsInQueue(courseID)
}

// mutate 在副本上修改，写入存储成功后才替换内存中的记录
func (s *SessionStore) mutate(ctx context.Context, op string, apply func(u *model.User) bool) (user *model.User, err error) {
	ctx, span := tracing.StartSpan(ctx, "SessionStore."+op)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, nil
	}

	next := s.user.Clone()
	if !apply(next) {
		return next, nil
	}

	defer func() { monitoring.ObserveSessionOp(op, err) }()
	if err := s.Storage.Save(ctx, next); err != nil {
		logger.Log.Error("保存会话失败", zap.String("device", s.DeviceID), zap.String("op", op), zap.Error(err))
		return nil, err
	}
	s.user = next
	return next.Clone(), nil
}

// evictable 没有登录用户也没有进行中的认证，丢弃后可从存储无损重建
func (s *SessionStore) evictable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user == nil && !s.authenticating
}

func (s *SessionStore) busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticating
}

func (s *SessionStore) touch(now time.Time) {
	s.lastUsed.Store(now.UnixNano())
}

func (s *SessionStore) lastUsedAt() time.Time {
	return time.Unix(0, s.lastUsed.Load())
}

func (s *SessionStore) newUserID() string {
	return strconv.FormatInt(s.Now().UnixMilli(), 10)
}

func validateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return util.NewValidationError("email", util.ErrInvalidEmail)
	}
	return nil
}

