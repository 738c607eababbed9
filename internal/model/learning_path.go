package model

const (
	PathAIFundamentals = "ai-fundamentals"
	PathMLSpecialist   = "ml-specialist"
	PathBusinessAI     = "business-ai"
	PathAISpecialist   = "ai-specialist"
)

// LearningPath 预定义学习路径，推荐时按偏好复制后追加课程
// swagger:model LearningPath
type LearningPath struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Courses       []Course `json:"courses"`
	Tags          []string `json:"tags"`
	TotalDuration int      `json:"totalDuration"` // 分钟
}

func (p *LearningPath) Contains(courseID int) bool {
	for _, c := range p.Courses {
		if c.ID == courseID {
			return true
		}
	}
	return false
}

func (p *LearningPath) SumDuration() int {
	total := 0
	for _, c := range p.Courses {
		total += c.Duration
	}
	return total
}
