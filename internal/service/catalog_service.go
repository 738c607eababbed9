package service

import (
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/repository"
	"strings"
)

// FilterAll 分类和格式筛选中表示不过滤
const FilterAll = "all"

// CourseFilter 课程页的三个筛选条件，空值等同于不过滤
type CourseFilter struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	Format   string `form:"format"`
}

type CatalogService struct {
	CourseRepo *repository.CourseRepository
}

func NewCatalogService(courseRepo *repository.CourseRepository) *CatalogService {
	return &CatalogService{CourseRepo: courseRepo}
}

// GetAllCourses 返回目录副本，调用方的修改不会被其他地方看到
func (s *CatalogService) GetAllCourses() []model.Course {
	return s.CourseRepo.All()
}

func (s *CatalogService) GetCourse(id int) (*model.Course, error) {
	return s.CourseRepo.FindByID(id)
}

// Search 标题、分类、描述的大小写不敏感子串匹配
func (s *CatalogService) Search(query string) []model.Course {
	return searchCourses(s.CourseRepo.All(), query)
}

func (s *CatalogService) FilterByCategory(category string) []model.Course {
	return filterByCategory(s.CourseRepo.All(), category)
}

func (s *CatalogService) FilterByFormat(format string) []model.Course {
	return filterByFormat(s.CourseRepo.All(), format)
}

func (s *CatalogService) Filter(f CourseFilter) []model.Course {
	courses := searchCourses(s.CourseRepo.All(), f.Query)
	courses = filterByCategory(courses, f.Category)
	return filterByFormat(courses, f.Format)
}

// Categories 按目录顺序去重
func (s *CatalogService) Categories() []string {
	seen := make(map[string]bool)
	var res []string
	for _, c := range s.CourseRepo.All() {
		if !seen[c.Category] {
			seen[c.Category] = true
			res = append(res, c.Category)
		}
	}
	return res
}

func searchCourses(courses []model.Course, query string) []model.Course {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return courses
	}
	return filterCourses(courses, func(c model.Course) bool {
		return strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(c.Category), q) ||
			strings.Contains(strings.ToLower(c.Description), q)
	})
}

func filterByCategory(courses []model.Course, category string) []model.Course {
	if category == "" || strings.EqualFold(category, FilterAll) {
		return courses
	}
	return filterCourses(courses, func(c model.Course) bool {
		return strings.EqualFold(c.Category, category)
	})
}

func filterByFormat(courses []model.Course, format string) []model.Course {
	if format == "" || format == FilterAll {
		return courses
	}
	return filterCourses(courses, func(c model.Course) bool {
		return string(c.Format) == format
	})
}

func filterCourses(courses []model.Course, keep func(model.Course) bool) []model.Course {
	res := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if keep(c) {
			res = append(res, c)
		}
	}
	return res
}
