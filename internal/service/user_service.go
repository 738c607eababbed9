package service

import (
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/repository"
	"ai_edu_navigator/internal/util"
	"context"
)

// UserService 当前设备用户的资料、偏好、设置和课程队列
type UserService struct {
	CourseRepo *repository.CourseRepository
}

func NewUserService(courseRepo *repository.CourseRepository) *UserService {
	return &UserService{CourseRepo: courseRepo}
}

func (s *UserService) UpdatePreferences(ctx context.Context, store *SessionStore, prefs model.Preferences) (*model.User, error) {
	return requireUser(store.UpdatePreferences(ctx, prefs))
}

// GetSettings 用户尚未保存过设置时返回默认值
func (s *UserService) GetSettings(store *SessionStore) (*model.Settings, error) {
	user := store.User()
	if user == nil {
		return nil, util.ErrNotAuthenticated
	}
	if user.Settings != nil {
		return user.Settings, nil
	}
	def := model.DefaultSettings()
	return &def, nil
}

func (s *UserService) UpdateSettings(ctx context.Context, store *SessionStore, settings model.Settings) (*model.Settings, error) {
	user, err := requireUser(store.UpdateSettings(ctx, settings))
	if err != nil {
		return nil, err
	}
	return user.Settings, nil
}

// GetQueue 按加入顺序返回课程，目录中已不存在的 id 被跳过
func (s *UserService) GetQueue(store *SessionStore) ([]model.Course, error) {
	user := store.User()
	if user == nil {
		return nil, util.ErrNotAuthenticated
	}
	return s.CourseRepo.FindByIDs(user.QueuedCourses), nil
}

func (s *UserService) AddToQueue(ctx context.Context, store *SessionStore, courseID int) (*model.User, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return nil, err
	}
	return requireUser(store.AddCourseToQueue(ctx, courseID))
}

func (s *UserService) RemoveFromQueue(ctx context.Context, store *SessionStore, courseID int) (*model.User, error) {
	return requireUser(store.RemoveCourseFromQueue(ctx, courseID))
}

// requireUser 会话层在未登录时静默忽略，接口层需要明确报错
func requireUser(user *model.User, err error) (*model.User, error) {
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, util.ErrNotAuthenticated
	}
	return user, nil
}
