package repository

import (
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/util"
	"errors"
	"strings"
	"testing"
)

func TestCourseRepositoryCatalog(t *testing.T) {
	r := NewCourseRepository()
	courses := r.All()
	if len(courses) != 13 {
		t.Fatalf("All() returned %d courses, want 13", len(courses))
	}
	for i, c := range courses {
		if c.ID != i+1 {
			t.Fatalf("course at %d has id %d, catalog order changed", i, c.ID)
		}
	}

	if _, err := r.FindByID(99); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("FindByID(99) error = %v", err)
	}
	c, err := r.FindByID(9)
	if err != nil || c.Format != model.FormatVideo || c.Duration != 20 {
		t.Fatalf("FindByID(9) = %+v, %v", c, err)
	}
}

func TestCourseRepositoryReturnsCopies(t *testing.T) {
	r := NewCourseRepository()

	c, _ := r.FindByID(1)
	c.Title = "changed"
	*c.Progress = 99

	again, _ := r.FindByID(1)
	if again.Title != "Introduction to AI Concepts" || *again.Progress != 45 {
		t.Fatalf("catalog was mutated through a returned course: %+v", again)
	}

	all := r.All()
	all[0].Category = "changed"
	if r.All()[0].Category != "Fundamentals" {
		t.Fatalf("catalog was mutated through All()")
	}
}

func TestCourseRepositoryPaths(t *testing.T) {
	r := NewCourseRepository()
	tests := []struct {
		id       string
		courses  []int
		duration int
	}{
		{model.PathAIFundamentals, []int{1, 2, 4}, 35},
		{model.PathMLSpecialist, []int{2, 7, 3}, 35},
		{model.PathBusinessAI, []int{8, 1, 4}, 35},
		{model.PathAISpecialist, []int{3, 5, 6}, 45},
	}
	for _, tt := range tests {
		p, ok := r.FindPath(tt.id)
		if !ok {
			t.Fatalf("FindPath(%q) not found", tt.id)
		}
		if len(p.Courses) != len(tt.courses) {
			t.Fatalf("path %s has %d courses", tt.id, len(p.Courses))
		}
		for i, id := range tt.courses {
			if p.Courses[i].ID != id {
				t.Fatalf("path %s course %d = %d, want %d", tt.id, i, p.Courses[i].ID, id)
			}
		}
		if p.TotalDuration != tt.duration {
			t.Fatalf("path %s duration = %d, want %d", tt.id, p.TotalDuration, tt.duration)
		}
	}

	if _, ok := r.FindPath("unknown"); ok {
		t.Fatalf("FindPath(unknown) should not be found")
	}

	p, _ := r.FindPath(model.PathAIFundamentals)
	p.Courses = append(p.Courses, model.Course{ID: 12})
	p.Tags[0] = "changed"
	again, _ := r.FindPath(model.PathAIFundamentals)
	if len(again.Courses) != 3 || again.Tags[0] != "beginner" {
		t.Fatalf("path was mutated through a returned copy: %+v", again)
	}
	if len(r.Paths()) != 4 {
		t.Fatalf("Paths() returned %d paths", len(r.Paths()))
	}
}

func TestProgressRepositoryLevelsAscending(t *testing.T) {
	levels := NewProgressRepository().Levels()
	for i := 1; i < len(levels); i++ {
		if levels[i].Threshold <= levels[i-1].Threshold {
			t.Fatalf("levels not ascending at %d: %+v", i, levels)
		}
	}
}

func TestCourseRepositoryNarration(t *testing.T) {
	r := NewCourseRepository()
	for _, c := range r.All() {
		if c.ID > 8 {
			if c.AudioContent != "" {
				t.Errorf("video course %d should have no narration", c.ID)
			}
			continue
		}
		if !strings.HasPrefix(c.AudioContent, "Welcome to "+c.Title+".") {
			t.Errorf("course %d narration starts with %.40q", c.ID, c.AudioContent)
		}
		if paragraphs := strings.Split(c.AudioContent, "\n\n"); len(paragraphs) < 5 {
			t.Errorf("course %d narration has %d paragraphs", c.ID, len(paragraphs))
		}
	}
}
