package service

import (
	"ai_edu_navigator/internal/config"
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/util"
	"context"
)

// AuthResult 登录/注册成功后返回给客户端
type AuthResult struct {
	Token    string      `json:"token"`
	DeviceID string      `json:"deviceId"`
	User     *model.User `json:"user"`
}

// AuthService 在设备会话之上签发和校验令牌
type AuthService struct {
	Registry *SessionRegistry
	Cfg      *config.Config
}

func NewAuthService(registry *SessionRegistry, cfg *config.Config) *AuthService {
	return &AuthService{
		Registry: registry,
		Cfg:      cfg,
	}
}

func (s *AuthService) Login(ctx context.Context, deviceID, email, password string) (*AuthResult, error) {
	return s.run(ctx, deviceID, func(store *SessionStore) (*model.User, error) {
		return store.Login(ctx, email, password)
	})
}

func (s *AuthService) Register(ctx context.Context, deviceID, name, email, password string) (*AuthResult, error) {
	return s.run(ctx, deviceID, func(store *SessionStore) (*model.User, error) {
		return store.Register(ctx, name, email, password)
	})
}

func (s *AuthService) LoginWithGithub(ctx context.Context, deviceID string) (*AuthResult, error) {
	return s.run(ctx, deviceID, func(store *SessionStore) (*model.User, error) {
		return store.LoginWithGithub(ctx)
	})
}

func (s *AuthService) LoginWithLinkedin(ctx context.Context, deviceID string) (*AuthResult, error) {
	return s.run(ctx, deviceID, func(store *SessionStore) (*model.User, error) {
		return store.LoginWithLinkedin(ctx)
	})
}

func (s *AuthService) run(ctx context.Context, deviceID string, login func(*SessionStore) (*model.User, error)) (*AuthResult, error) {
	store, err := s.Registry.Get(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	user, err := login(store)
	if err != nil {
		s.Registry.Release(store)
		return nil, err
	}
	token, err := util.GenerateJWT(user, deviceID, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, DeviceID: deviceID, User: user}, nil
}

// Authorize 令牌必须属于该设备当前这一次登录：用户 ID 相同且 jti 等于登录会话 ID，
// 退出或重新登录后旧令牌失效
func (s *AuthService) Authorize(ctx context.Context, claims *util.Claims) (*SessionStore, error) {
	store, err := s.Registry.Get(ctx, claims.DeviceID)
	if err != nil {
		return nil, err
	}
	user := store.User()
	if user == nil {
		s.Registry.Release(store)
		return nil, util.ErrSessionNotFound
	}
	if user.ID != claims.UserID || user.SessionID != claims.ID {
		return nil, util.ErrSessionMismatch
	}
	return store, nil
}

func (s *AuthService) Logout(ctx context.Context, store *SessionStore) error {
	if err := store.Logout(ctx); err != nil {
		return err
	}
	s.Registry.Release(store)
	return nil
}
