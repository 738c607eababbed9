package service

import (
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/repository"
	"reflect"
	"testing"
)

func newDashboardService() *DashboardService {
	courses := repository.NewCourseRepository()
	return NewDashboardService(courses, repository.NewProgressRepository(), NewRecommendationService(courses))
}

func TestDashboardWithoutPreferences(t *testing.T) {
	d := newDashboardService().GetUserDashboard(&model.User{ID: "1", Name: "alice"})

	if d.Greeting != "Welcome back, alice!" {
		t.Fatalf("greeting = %q", d.Greeting)
	}
	if d.Subtitle != "Continue your Learning journey." {
		t.Fatalf("subtitle = %q", d.Subtitle)
	}
	if d.Path != nil || d.OnboardingComplete {
		t.Fatalf("no path or onboarding without preferences")
	}
	if got := courseIDs(d.Recommended); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("recommended = %v", got)
	}
	if got := courseIDs(d.ContinueLearning); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("continue learning = %v", got)
	}
	if d.Stats != (model.DashboardStats{LessonsCompleted: 7, MinutesLearned: 73, CurrentStreak: 3}) {
		t.Fatalf("stats = %+v", d.Stats)
	}
}

func TestDashboardWithPreferences(t *testing.T) {
	prefs := completePrefs()
	prefs.LearningExperience = model.ExperienceVoice
	user := &model.User{ID: "1", Name: "bob", Preferences: &prefs, QueuedCourses: []int{9, 4}}

	d := newDashboardService().GetUserDashboard(user)
	if d.Subtitle != "Continue your Skill Development journey with audio content." {
		t.Fatalf("subtitle = %q", d.Subtitle)
	}
	if !d.OnboardingComplete || d.Path == nil || d.Path.ID != model.PathMLSpecialist {
		t.Fatalf("unexpected path/onboarding: %+v", d.Path)
	}
	if got := courseIDs(d.Queue); !reflect.DeepEqual(got, []int{9, 4}) {
		t.Fatalf("queue = %v", got)
	}
	if len(d.ContinueLearning) != 2 || d.ContinueLearning[0].ID != d.Recommended[0].ID {
		t.Fatalf("continue learning should be the head of the recommendations")
	}
}

func TestSubtitleInteractive(t *testing.T) {
	p := &model.Preferences{LearningGoal: model.GoalCasual, LearningExperience: model.ExperienceBoth}
	if got := goalText(p) + formatText(p); got != "Casual Learning with interactive exercises" {
		t.Fatalf("got %q", got)
	}
}
