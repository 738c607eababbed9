package service

import (
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/repository"
	"ai_edu_navigator/pkg/monitoring"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// maxExtraPathCourses 按学习体验追加到路径末尾的课程上限
const maxExtraPathCourses = 2

var rolePaths = map[model.CustomerRole]string{
	model.RoleDeveloper:        model.PathMLSpecialist,
	model.RoleAIEngineer:       model.PathMLSpecialist,
	model.RoleDataAnalyst:      model.PathAISpecialist,
	model.RoleDataEngineer:     model.PathAISpecialist,
	model.RoleAdministrator:    model.PathBusinessAI,
	model.RoleIT:               model.PathBusinessAI,
	model.RoleSecurityEngineer: model.PathBusinessAI,
	model.RoleStudent:          model.PathAIFundamentals,
}

var goalPaths = map[model.LearningGoal]string{
	model.GoalCasual:       model.PathAIFundamentals,
	model.GoalProfessional: model.PathAISpecialist,
	model.GoalSkill:        model.PathMLSpecialist,
}

// roleKeywords 与课程分类（小写）匹配，命中的课程排在前面
var roleKeywords = map[model.CustomerRole][]string{
	model.RoleDeveloper:    {"code", "machine learning", "neural networks"},
	model.RoleAIEngineer:   {"code", "machine learning", "neural networks"},
	model.RoleDataAnalyst:  {"data", "nlp", "machine learning"},
	model.RoleDataEngineer: {"data", "nlp", "machine learning"},
}

// RecommendationService 根据偏好选择学习路径并对课程重新排序
type RecommendationService struct {
	CourseRepo *repository.CourseRepository
}

func NewRecommendationService(courseRepo *repository.CourseRepository) *RecommendationService {
	return &RecommendationService{CourseRepo: courseRepo}
}

// ResolvePathID 角色优先，未知或缺省角色按学习目标回退
func ResolvePathID(prefs *model.Preferences) string {
	if prefs.CustomerRole == model.RoleSolutionArchitect {
		if prefs.LearningGoal == model.GoalProfessional {
			return model.PathAISpecialist
		}
		return model.PathAIFundamentals
	}
	if id, ok := rolePaths[prefs.CustomerRole]; ok {
		return id
	}
	if id, ok := goalPaths[prefs.LearningGoal]; ok {
		return id
	}
	return model.PathAIFundamentals
}

// PathFormats 路径追加课程时使用的格式
func PathFormats(exp model.LearningExperience) []model.ContentFormat {
	switch exp {
	case model.ExperienceVoice:
		return []model.ContentFormat{model.FormatAudio}
	case model.ExperienceInteractive:
		return []model.ContentFormat{model.FormatInteractive}
	case model.ExperienceBoth:
		return []model.ContentFormat{model.FormatAudio, model.FormatInteractive, model.FormatVideo}
	}
	return nil
}

// RankingFormats 课程排序时优先的格式，interactive 同时包含 video
func RankingFormats(exp model.LearningExperience) []model.ContentFormat {
	switch exp {
	case model.ExperienceVoice:
		return []model.ContentFormat{model.FormatAudio}
	case model.ExperienceInteractive:
		return []model.ContentFormat{model.FormatInteractive, model.FormatVideo}
	case model.ExperienceBoth:
		return []model.ContentFormat{model.FormatAudio, model.FormatInteractive, model.FormatVideo}
	}
	return nil
}

// GetRecommendedPath 没有偏好时返回 nil；返回值是路径的独立副本
func (s *RecommendationService) GetRecommendedPath(user *model.User) *model.LearningPath {
	if user == nil || user.Preferences == nil {
		return nil
	}
	prefs := user.Preferences

	path, ok := s.CourseRepo.FindPath(ResolvePathID(prefs))
	if !ok {
		return nil
	}

	augmented := false
	if formats := PathFormats(prefs.LearningExperience); len(formats) > 0 {
		added := 0
		for _, c := range s.CourseRepo.All() {
			if added == maxExtraPathCourses {
				break
			}
			if slices.Contains(formats, c.Format) && !path.Contains(c.ID) {
				path.Courses = append(path.Courses, c)
				added++
			}
		}
		path.TotalDuration = path.SumDuration()
		augmented = added > 0
	}

	monitoring.RecommendedPaths.WithLabelValues(path.ID, strconv.FormatBool(augmented)).Inc()
	return path
}

// GetRecommendedCourses 三轮稳定排序依次执行：角色关键词、目标时长、偏好格式。
// 每一轮都是对整个列表的完整排序，后一轮可能打乱前一轮的结果。
func (s *RecommendationService) GetRecommendedCourses(user *model.User, limit int) []model.Course {
	courses := s.CourseRepo.All()
	if limit < 0 {
		limit = 0
	}

	if user != nil && user.Preferences != nil {
		prefs := user.Preferences

		if keywords, ok := roleKeywords[prefs.CustomerRole]; ok {
			courses = partitionStable(courses, func(c model.Course) bool {
				return slices.Contains(keywords, strings.ToLower(c.Category))
			})
		}

		if prefs.TargetTime != 0 {
			target := int(prefs.TargetTime)
			sort.SliceStable(courses, func(i, j int) bool {
				return absInt(courses[i].Duration-target) < absInt(courses[j].Duration-target)
			})
		}

		if formats := RankingFormats(prefs.LearningExperience); len(formats) > 0 {
			courses = partitionStable(courses, func(c model.Course) bool {
				return slices.Contains(formats, c.Format)
			})
		}
	}

	if limit < len(courses) {
		courses = courses[:limit]
	}
	return courses
}

// partitionStable 命中的元素保持原相对顺序排在前面
func partitionStable(courses []model.Course, front func(model.Course) bool) []model.Course {
	res := make([]model.Course, 0, len(courses))
	var rest []model.Course
	for _, c := range courses {
		if front(c) {
			res = append(res, c)
		} else {
			rest = append(rest, c)
		}
	}
	return append(res, rest...)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
