package model

// Badge 成就徽章
// swagger:model Badge
type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Achieved    bool   `json:"achieved"`
}

// Level 积分等级，Threshold 为达到该等级所需最低积分
type Level struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
}

type ActivityType string

const (
	ActivityLessonCompleted ActivityType = "lesson_completed"
	ActivityQuizCompleted   ActivityType = "quiz_completed"
	ActivityCourseCompleted ActivityType = "course_completed"
)

type Activity struct {
	Type   ActivityType `json:"type"`
	Name   string       `json:"name"`
	Date   string       `json:"date"`
	Points int          `json:"points"`
}

// ProgressSnapshot 学习进度统计原始数据
type ProgressSnapshot struct {
	CompletedCourses int        `json:"completedCourses"`
	TotalCourses     int        `json:"totalCourses"`
	CompletedLessons int        `json:"completedLessons"`
	TotalLessons     int        `json:"totalLessons"`
	CurrentStreak    int        `json:"currentStreak"`
	LongestStreak    int        `json:"longestStreak"`
	Points           int        `json:"points"`
	Badges           []Badge    `json:"badges"`
	Levels           []Level    `json:"levels"`
	RecentActivity   []Activity `json:"recentActivity"`
}

// DashboardStats 首页统计卡片
type DashboardStats struct {
	LessonsCompleted int `json:"lessonsCompleted"`
	MinutesLearned   int `json:"minutesLearned"`
	CurrentStreak    int `json:"currentStreak"`
}
