package repository

import "ai_edu_navigator/internal/model"

// ProgressRepository 进度、徽章和等级目前都是静态演示数据
type ProgressRepository struct{}

func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

func (r *ProgressRepository) Snapshot(userID string) model.ProgressSnapshot {
	return model.ProgressSnapshot{
		CompletedCourses: 3,
		TotalCourses:     12,
		CompletedLessons: 24,
		TotalLessons:     86,
		CurrentStreak:    5,
		LongestStreak:    14,
		Points:           1250,
		Badges: []model.Badge{
			{Name: "First Step", Description: "Completed your first lesson", Icon: "star", Achieved: true},
			{Name: "Quick Learner", Description: "Completed 5 lessons in a day", Icon: "clock", Achieved: true},
			{Name: "Knowledge Seeker", Description: "Completed a full course", Icon: "award", Achieved: true},
			{Name: "Master Mind", Description: "Achieved 100% in a quiz", Icon: "trophy", Achieved: false},
			{Name: "Consistent Learner", Description: "Maintained a 7-day streak", Icon: "chart-bar", Achieved: false},
		},
		Levels: r.Levels(),
		RecentActivity: []model.Activity{
			{Type: model.ActivityLessonCompleted, Name: "Introduction to AI Models", Date: "2 days ago", Points: 50},
			{Type: model.ActivityQuizCompleted, Name: "Machine Learning Basics", Date: "4 days ago", Points: 100},
			{Type: model.ActivityCourseCompleted, Name: "Python for Data Science", Date: "1 week ago", Points: 250},
		},
	}
}

// Levels 按阈值升序
func (r *ProgressRepository) Levels() []model.Level {
	return []model.Level{
		{Name: "Beginner", Threshold: 0},
		{Name: "Explorer", Threshold: 500},
		{Name: "Enthusiast", Threshold: 1000},
		{Name: "Expert", Threshold: 2500},
		{Name: "Master", Threshold: 5000},
	}
}

func (r *ProgressRepository) DashboardStats(userID string) model.DashboardStats {
	return model.DashboardStats{
		LessonsCompleted: 7,
		MinutesLearned:   73,
		CurrentStreak:    3,
	}
}
