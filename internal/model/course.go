package model

type ContentFormat string

const (
	FormatAudio       ContentFormat = "audio"
	FormatInteractive ContentFormat = "interactive"
	FormatText        ContentFormat = "text"
	FormatVideo       ContentFormat = "video"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// Course 静态课程记录，运行期不可变
// swagger:model Course
type Course struct {
	ID           int           `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Duration     int           `json:"duration"` // 分钟
	Format       ContentFormat `json:"format"`
	Level        CourseLevel   `json:"level"`
	Category     string        `json:"category"`
	Image        string        `json:"image"`
	Progress     *int          `json:"progress,omitempty"`
	AudioURL     string        `json:"audioUrl,omitempty"`
	AudioContent string        `json:"audioContent,omitempty"`
	VideoURL     string        `json:"videoUrl,omitempty"`
}

// ProgressPercent 未设置进度时返回 0
func (c Course) ProgressPercent() int {
	if c.Progress == nil {
		return 0
	}
	return *c.Progress
}
