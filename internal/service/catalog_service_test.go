package service

import (
	"ai_edu_navigator/internal/repository"
	"ai_edu_navigator/internal/util"
	"errors"
	"reflect"
	"testing"
)

func newCatalog() *CatalogService {
	return NewCatalogService(repository.NewCourseRepository())
}

func TestGetAllCoursesReturnsCopy(t *testing.T) {
	s := newCatalog()
	courses := s.GetAllCourses()
	if len(courses) != 13 {
		t.Fatalf("len = %d, want 13", len(courses))
	}
	courses[0].Title = "changed"
	*courses[0].Progress = 99

	again := s.GetAllCourses()
	if again[0].Title == "changed" || again[0].ProgressPercent() != 45 {
		t.Fatalf("catalog mutated through returned slice: %+v", again[0])
	}
}

func TestSearch(t *testing.T) {
	s := newCatalog()
	tests := []struct {
		query string
		want  []int
	}{
		{"machine", []int{2, 7}},
		{"NLP", []int{5, 10}},
		{"ETHICAL", []int{4, 13}},
		{"  ", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}},
		{"quantum", []int{}},
	}
	for _, tt := range tests {
		if got := courseIDs(s.Search(tt.query)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilterByCategory(t *testing.T) {
	s := newCatalog()
	if got := courseIDs(s.FilterByCategory("ethics")); !reflect.DeepEqual(got, []int{4, 13}) {
		t.Fatalf("ethics = %v", got)
	}
	for _, c := range []string{"", "all", "ALL"} {
		if got := s.FilterByCategory(c); len(got) != 13 {
			t.Fatalf("FilterByCategory(%q) len = %d", c, len(got))
		}
	}
	if got := s.FilterByCategory("Machine"); len(got) != 0 {
		t.Fatalf("category match must be exact, got %v", courseIDs(got))
	}
}

func TestFilterByFormat(t *testing.T) {
	s := newCatalog()
	if got := courseIDs(s.FilterByFormat("video")); !reflect.DeepEqual(got, []int{9, 10, 11, 12, 13}) {
		t.Fatalf("video = %v", got)
	}
	if got := s.FilterByFormat("all"); len(got) != 13 {
		t.Fatalf("all len = %d", len(got))
	}
	if got := s.FilterByFormat("text"); len(got) != 0 {
		t.Fatalf("no text courses expected, got %v", courseIDs(got))
	}
}

func TestFilterComposes(t *testing.T) {
	s := newCatalog()
	got := s.Filter(CourseFilter{Query: "learning", Category: "Machine Learning", Format: "interactive"})
	if ids := courseIDs(got); !reflect.DeepEqual(ids, []int{2, 7}) {
		t.Fatalf("Filter() = %v", ids)
	}
	if got := s.Filter(CourseFilter{}); len(got) != 13 {
		t.Fatalf("empty filter len = %d", len(got))
	}
}

func TestCategories(t *testing.T) {
	want := []string{"Fundamentals", "Machine Learning", "Deep Learning", "Ethics", "NLP", "Computer Vision", "Business", "Career"}
	if got := newCatalog().Categories(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories() = %v", got)
	}
}

func TestGetCourse(t *testing.T) {
	s := newCatalog()
	c, err := s.GetCourse(5)
	if err != nil || c.Title != "Natural Language Processing" {
		t.Fatalf("GetCourse(5) = %+v, %v", c, err)
	}
	if _, err := s.GetCourse(99); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("GetCourse(99) error = %v", err)
	}
}
