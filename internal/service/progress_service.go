package service

import (
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/repository"
	"math"
)

// ProgressReport 进度页数据：原始统计加上派生的百分比与等级
type ProgressReport struct {
	model.ProgressSnapshot
	CourseCompletion  int          `json:"courseCompletion"`
	LessonCompletion  int          `json:"lessonCompletion"`
	CurrentLevel      model.Level  `json:"currentLevel"`
	NextLevel         *model.Level `json:"nextLevel,omitempty"`
	LevelProgress     int          `json:"levelProgress"`
	PointsToNextLevel int          `json:"pointsToNextLevel"`
}

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo}
}

func (s *ProgressService) GetProgress(userID string) *ProgressReport {
	snap := s.ProgressRepo.Snapshot(userID)
	report := &ProgressReport{
		ProgressSnapshot: snap,
		CourseCompletion: percent(snap.CompletedCourses, snap.TotalCourses),
		LessonCompletion: percent(snap.CompletedLessons, snap.TotalLessons),
	}

	cur, next := LevelFor(snap.Levels, snap.Points)
	report.CurrentLevel = cur
	report.LevelProgress = 100
	if next != nil {
		report.NextLevel = next
		report.LevelProgress = min(100, percent(snap.Points-cur.Threshold, next.Threshold-cur.Threshold))
		report.PointsToNextLevel = next.Threshold - snap.Points
	}
	return report
}

// LevelFor levels 需按阈值升序；返回当前等级和下一等级（已满级时为 nil）
func LevelFor(levels []model.Level, points int) (model.Level, *model.Level) {
	if len(levels) == 0 {
		return model.Level{}, nil
	}
	idx := 0
	for i, l := range levels {
		if points >= l.Threshold {
			idx = i
		}
	}
	if idx == len(levels)-1 {
		return levels[idx], nil
	}
	next := levels[idx+1]
	return levels[idx], &next
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
