package service

import (
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/repository"
	"fmt"
)

const (
	dashboardRecommendedLimit = 3
	continueLearningLimit     = 2
)

type DashboardService struct {
	CourseRepo            *repository.CourseRepository
	ProgressRepo          *repository.ProgressRepository
	RecommendationService *RecommendationService
}

func NewDashboardService(
	courseRepo *repository.CourseRepository,
	progressRepo *repository.ProgressRepository,
	recommendationService *RecommendationService,
) *DashboardService {
	return &DashboardService{
		CourseRepo:            courseRepo,
		ProgressRepo:          progressRepo,
		RecommendationService: recommendationService,
	}
}

type Dashboard struct {
	Greeting           string               `json:"greeting"`
	Subtitle           string               `json:"subtitle"`
	Stats              model.DashboardStats `json:"stats"`
	OnboardingComplete bool                 `json:"onboardingComplete"`
	Path               *model.LearningPath  `json:"path"`
	ContinueLearning   []model.Course       `json:"continueLearning"`
	Recommended        []model.Course       `json:"recommendedCourses"`
	Queue              []model.Course       `json:"queuedCourses"`
}

func (s *DashboardService) GetUserDashboard(user *model.User) *Dashboard {
	recommended := s.RecommendationService.GetRecommendedCourses(user, dashboardRecommendedLimit)

	// 继续学习区块展示推荐列表的前两门
	cont := recommended
	if len(cont) > continueLearningLimit {
		cont = cont[:continueLearningLimit]
	}

	return &Dashboard{
		Greeting:           fmt.Sprintf("Welcome back, %s!", user.Name),
		Subtitle:           fmt.Sprintf("Continue your %s journey%s.", goalText(user.Preferences), formatText(user.Preferences)),
		Stats:              s.ProgressRepo.DashboardStats(user.ID),
		OnboardingComplete: HasCompletedOnboarding(user),
		Path:               s.RecommendationService.GetRecommendedPath(user),
		ContinueLearning:   cont,
		Recommended:        recommended,
		Queue:              s.CourseRepo.FindByIDs(user.QueuedCourses),
	}
}

func goalText(p *model.Preferences) string {
	if p == nil {
		return "Learning"
	}
	switch p.LearningGoal {
	case model.GoalCasual:
		return "Casual Learning"
	case model.GoalProfessional:
		return "Professional Growth"
	case model.GoalSkill:
		return "Skill Development"
	default:
		return "Learning"
	}
}

func formatText(p *model.Preferences) string {
	if p == nil || p.LearningExperience == "" {
		return ""
	}
	if p.LearningExperience == model.ExperienceVoice {
		return " with audio content"
	}
	return " with interactive exercises"
}
