package model

import "slices"

type AuthProvider string

const (
	ProviderEmail    AuthProvider = "email"
	ProviderGithub   AuthProvider = "github"
	ProviderLinkedin AuthProvider = "linkedin"
)

// User 设备本地持久化的用户记录，每次变更整体覆盖写入
// swagger:model User
type User struct {
	ID            string       `json:"id"`
	Email         string       `json:"email"`
	Name          string       `json:"name"`
	Provider      AuthProvider `json:"provider,omitempty"`
	Preferences   *Preferences `json:"preferences,omitempty"`
	QueuedCourses []int        `json:"queuedCourses,omitempty"`
	Settings      *Settings    `json:"settings,omitempty"`

	// SessionID 每次登录重新生成，令牌的 jti 必须与之一致
	SessionID string `json:"sessionId,omitempty"`
}

// Clone 深拷贝，调用方修改返回值不会影响会话内状态
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Preferences != nil {
		p := *u.Preferences
		c.Preferences = &p
	}
	if u.QueuedCourses != nil {
		c.QueuedCourses = slices.Clone(u.QueuedCourses)
	}
	if u.Settings != nil {
		s := *u.Settings
		c.Settings = &s
	}
	return &c
}

func (u *User) IsInQueue(courseID int) bool {
	return slices.Contains(u.QueuedCourses, courseID)
}
