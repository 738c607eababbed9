package service

import (
	"ai_edu_navigator/internal/model"
	"strconv"
)

const OnboardingStepCount = 5

type OnboardingOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// OnboardingStep 引导向导的一步，Field 对应偏好中的字段名
type OnboardingStep struct {
	Step        int                `json:"step"`
	Field       string             `json:"field"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Options     []OnboardingOption `json:"options"`
}

type OnboardingService struct{}

func NewOnboardingService() *OnboardingService {
	return &OnboardingService{}
}

// HasCompletedOnboarding 五个偏好字段都存在才算完成；没有用户或偏好时为 false
func HasCompletedOnboarding(user *model.User) bool {
	return user != nil && user.Preferences.IsComplete()
}

func (s *OnboardingService) HasCompletedOnboarding(user *model.User) bool {
	return HasCompletedOnboarding(user)
}

// CanProceed 当前步骤对应的字段已填写
func (s *OnboardingService) CanProceed(step int, prefs model.Preferences) bool {
	switch step {
	case 1:
		return prefs.CustomerRole != ""
	case 2:
		return prefs.LearningGoal != ""
	case 3:
		return prefs.TargetTime != 0
	case 4:
		return prefs.WeeklyFrequency != ""
	case 5:
		return prefs.LearningExperience != ""
	default:
		return false
	}
}

func (s *OnboardingService) Steps() []OnboardingStep {
	return []OnboardingStep{
		{
			Step:        1,
			Field:       "customerRole",
			Title:       "What's your role?",
			Description: "Select your professional role so we can tailor content to your needs.",
			Options: []OnboardingOption{
				{Value: string(model.RoleDeveloper), Label: "Developer", Description: "Software development professional"},
				{Value: string(model.RoleAdministrator), Label: "Administrator", Description: "System or platform administrator"},
				{Value: string(model.RoleDataAnalyst), Label: "Data Analyst/Scientist", Description: "Works with data analysis and interpretation"},
				{Value: string(model.RoleStudent), Label: "Student", Description: "Currently pursuing education"},
				{Value: string(model.RoleSolutionArchitect), Label: "Solution Architect", Description: "System and solution design professional"},
				{Value: string(model.RoleIT), Label: "IT", Description: "Information technology professional"},
				{Value: string(model.RoleDataEngineer), Label: "Data Engineer", Description: "Builds and maintains data infrastructure"},
				{Value: string(model.RoleSecurityEngineer), Label: "Security Engineer", Description: "Cybersecurity and information security professional"},
				{Value: string(model.RoleAIEngineer), Label: "AI Engineer", Description: "Works on artificial intelligence solutions"},
			},
		},
		{
			Step:        2,
			Field:       "learningGoal",
			Title:       "What's your learning goal?",
			Description: "Choose what best describes your intention for using our app.",
			Options: []OnboardingOption{
				{Value: string(model.GoalCasual), Label: "Casual Learning", Description: "I want to explore AI concepts casually out of curiosity"},
				{Value: string(model.GoalProfessional), Label: "Professional Growth", Description: "I need to understand AI for my current or future job"},
				{Value: string(model.GoalSkill), Label: "Skill Development", Description: "I want to build specific skills to use AI in my projects"},
			},
		},
		{
			Step:        3,
			Field:       "targetTime",
			Title:       "How much time do you have for learning?",
			Description: "We'll adjust content length to fit your schedule.",
			Options:     targetTimeOptions(),
		},
		{
			Step:        4,
			Field:       "weeklyFrequency",
			Title:       "How often would you like to learn?",
			Description: "Set a learning frequency that works for you.",
			Options: []OnboardingOption{
				{Value: string(model.FrequencyOnce), Label: "Once a week", Description: "One learning session per week"},
				{Value: string(model.FrequencyTwice), Label: "Twice a week", Description: "Two learning sessions per week"},
				{Value: string(model.FrequencyThrice), Label: "Three times a week", Description: "Three learning sessions per week"},
				{Value: string(model.FrequencyWeekday), Label: "Weekdays", Description: "Learn Monday to Friday"},
				{Value: string(model.FrequencyWeekend), Label: "Weekends", Description: "Learn on Saturday and Sunday"},
				{Value: string(model.FrequencyDaily), Label: "Daily", Description: "Learn every day"},
			},
		},
		{
			Step:        5,
			Field:       "learningExperience",
			Title:       "Preferred learning experience?",
			Description: "Choose your preferred way to consume content.",
			Options: []OnboardingOption{
				{Value: string(model.ExperienceVoice), Label: "Hands-free voice only", Description: "Listen to lessons like a podcast"},
				{Value: string(model.ExperienceInteractive), Label: "Interactive", Description: "Learn through interactive exercises and visuals"},
				{Value: string(model.ExperienceBoth), Label: "Both", Description: "Combine audio content with interactive elements"},
			},
		},
	}
}

func targetTimeOptions() []OnboardingOption {
	descriptions := map[model.TargetTime]string{
		5:  "Quick microlearning sessions",
		10: "Standard learning sessions",
		15: "Deep dive learning sessions",
		20: "Extended in-depth learning",
	}
	opts := make([]OnboardingOption, 0, len(model.TargetTimes))
	for _, t := range model.TargetTimes {
		label := strconv.Itoa(int(t)) + " minutes"
		if t == model.TargetTimes[len(model.TargetTimes)-1] {
			label = strconv.Itoa(int(t)) + "+ minutes"
		}
		opts = append(opts, OnboardingOption{Value: strconv.Itoa(int(t)), Label: label, Description: descriptions[t]})
	}
	return opts
}
