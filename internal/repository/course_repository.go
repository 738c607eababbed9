package repository

import (
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/util"
	"slices"
)

type CourseRepository struct {
	courses []model.Course
	paths   []model.LearningPath
}

// NewCourseRepository 课程目录是编译期固定的数据
func NewCourseRepository() *CourseRepository {
	r := &CourseRepository{courses: defaultCourses()}
	r.paths = r.buildPaths()
	return r
}

// All 返回目录副本
func (r *CourseRepository) All() []model.Course {
	return cloneCourses(r.courses)
}

func (r *CourseRepository) FindByID(id int) (*model.Course, error) {
	for i := range r.courses {
		if r.courses[i].ID == id {
			c := cloneCourse(r.courses[i])
			return &c, nil
		}
	}
	return nil, util.ErrCourseNotFound
}

func (r *CourseRepository) FindByIDs(ids []int) []model.Course {
	res := make([]model.Course, 0, len(ids))
	for _, id := range ids {
		if c, err := r.FindByID(id); err == nil {
			res = append(res, *c)
		}
	}
	return res
}

// FindPath 返回预定义路径的拷贝，调用方可以安全地追加课程
func (r *CourseRepository) FindPath(id string) (*model.LearningPath, bool) {
	for _, p := range r.paths {
		if p.ID == id {
			cp := p
			cp.Courses = cloneCourses(p.Courses)
			cp.Tags = slices.Clone(p.Tags)
			return &cp, true
		}
	}
	return nil, false
}

func (r *CourseRepository) Paths() []model.LearningPath {
	res := make([]model.LearningPath, 0, len(r.paths))
	for _, p := range r.paths {
		cp, _ := r.FindPath(p.ID)
		res = append(res, *cp)
	}
	return res
}

func (r *CourseRepository) buildPaths() []model.LearningPath {
	specs := []struct {
		id, title, description string
		courseIDs              []int
		tags                   []string
	}{
		{
			id:          model.PathAIFundamentals,
			title:       "AI Fundamentals",
			description: "A comprehensive introduction to artificial intelligence concepts",
			courseIDs:   []int{1, 2, 4},
			tags:        []string{"beginner", "fundamentals", "ethics"},
		},
		{
			id:          model.PathMLSpecialist,
			title:       "Machine Learning Specialist",
			description: "Deep dive into machine learning concepts and applications",
			courseIDs:   []int{2, 7, 3},
			tags:        []string{"machine learning", "advanced", "reinforcement learning"},
		},
		{
			id:          model.PathBusinessAI,
			title:       "AI for Business",
			description: "Practical AI applications for business professionals",
			courseIDs:   []int{8, 1, 4},
			tags:        []string{"business", "ethics", "decision making"},
		},
		{
			id:          model.PathAISpecialist,
			title:       "AI Specialist Track",
			description: "Advanced topics in AI across multiple domains",
			courseIDs:   []int{3, 5, 6},
			tags:        []string{"intermediate", "neural networks", "computer vision", "nlp"},
		},
	}

	paths := make([]model.LearningPath, 0, len(specs))
	for _, s := range specs {
		p := model.LearningPath{
			ID:          s.id,
			Title:       s.title,
			Description: s.description,
			Courses:     r.FindByIDs(s.courseIDs),
			Tags:        s.tags,
		}
		p.TotalDuration = p.SumDuration()
		paths = append(paths, p)
	}
	return paths
}

// cloneCourse Progress 是指针，需要单独复制
func cloneCourse(c model.Course) model.Course {
	if c.Progress != nil {
		c.Progress = progress(*c.Progress)
	}
	return c
}

func cloneCourses(courses []model.Course) []model.Course {
	res := make([]model.Course, len(courses))
	for i, c := range courses {
		res[i] = cloneCourse(c)
	}
	return res
}

func progress(p int) *int {
	return &p
}

func defaultCourses() []model.Course {
	return []model.Course{
		{
			ID:           1,
			Title:        "Introduction to AI Concepts",
			Description:  "Learn the fundamentals of artificial intelligence and how it's transforming industries",
			Category:     "Fundamentals",
			Level:        model.LevelBeginner,
			Format:       model.FormatAudio,
			Duration:     15,
			Progress:     progress(45),
			Image:        "https://cdn-icons-png.flaticon.com/512/2103/2103652.png",
			AudioURL:     "https://storage.googleapis.com/aicontent/samples/ai_introduction.mp3",
			AudioContent: narrationIntroAI,
		},
		{
			ID:           2,
			Title:        "Machine Learning Basics",
			Description:  "Understand the core principles behind machine learning models",
			Category:     "Machine Learning",
			Level:        model.LevelBeginner,
			Format:       model.FormatInteractive,
			Duration:     10,
			Progress:     progress(20),
			Image:        "https://cdn-icons-png.flaticon.com/512/2103/2103633.png",
			AudioContent: narrationMLBasics,
		},
		{
			ID:           3,
			Title:        "Neural Networks 101",
			Description:  "Interactive introduction to neural networks with visual examples",
			Category:     "Deep Learning",
			Level:        model.LevelIntermediate,
			Format:       model.FormatInteractive,
			Duration:     15,
			Progress:     progress(0),
			Image:        "https://cdn-icons-png.flaticon.com/512/2103/2103674.png",
			AudioContent: narrationNeuralNetworks,
		},
		{
			ID:           4,
			Title:        "Ethical AI and Responsible Development",
			Description:  "Learn about ethical considerations in AI development",
			Category:     "Ethics",
			Level:        model.LevelBeginner,
			Format:       model.FormatAudio,
			Duration:     10,
			Progress:     progress(0),
			Image:        "https://cdn-icons-png.flaticon.com/512/2103/2103618.png",
			AudioURL:     "https://storage.googleapis.com/aicontent/samples/ethical_ai.mp3",
			AudioContent: narrationEthicalAI,
		},
		{
			ID:           5,
			Title:        "Natural Language Processing",
			Description:  "Explore how AI understands and processes human language",
			Category:     "NLP",
			Level:        model.LevelIntermediate,
			Format:       model.FormatInteractive,
			Duration:     15,
			Progress:     progress(0),
			Image:        "https://cdn-icons-png.flaticon.com/512/2103/2103666.png",
			AudioContent: narrationNLP,
		},
		{
			ID:           6,
			Title:        "Computer Vision Fundamentals",
			Description:  "Audio walkthrough of how AI sees and interprets visual information",
			Category:     "Computer Vision",
			Level:        model.LevelIntermediate,
			Format:       model.FormatAudio,
			Duration:     15,
			Progress:     progress(0),
			Image:        "https://cdn-icons-png.flaticon.com/512/2103/2103650.png",
			AudioURL:     "https://storage.googleapis.com/aicontent/samples/computer_vision.mp3",
			AudioContent: narrationComputerVision,
		},
		{
			ID:           7,
			Title:        "Reinforcement Learning",
			Description:  "Interactive examples of how AI learns through trial and error",
			Category:     "Machine Learning",
			Level:        model.LevelAdvanced,
			Format:       model.FormatInteractive,
			Duration:     10,
			Progress:     progress(0),
			Image:        "https://cdn-icons-png.flaticon.com/512/2103/2103658.png",
			AudioContent: narrationReinforcement,
		},
		{
			ID:           8,
			Title:        "AI for Business Decision Making",
			Description:  "Learn how businesses implement AI for better outcomes",
			Category:     "Business",
			Level:        model.LevelBeginner,
			Format:       model.FormatAudio,
			Duration:     10,
			Progress:     progress(0),
			Image:        "https://cdn-icons-png.flaticon.com/512/2103/2103611.png",
			AudioURL:     "https://storage.googleapis.com/aicontent/samples/ai_business.mp3",
			AudioContent: narrationBusinessAI,
		},
		{
			ID:          9,
			Title:       "Computer Vision with Deep Learning",
			Description: "A video tutorial on implementing advanced computer vision techniques with deep learning",
			Category:    "Deep Learning",
			Level:       model.LevelAdvanced,
			Format:      model.FormatVideo,
			Duration:    20,
			Progress:    progress(0),
			Image:       "https://cdn-icons-png.flaticon.com/512/2103/2103674.png",
			VideoURL:    "https://www.youtube.com/watch?v=ad79nYk2keg",
		},
		{
			ID:          10,
			Title:       "Practical NLP Applications",
			Description: "Video course on building practical NLP applications in various domains",
			Category:    "NLP",
			Level:       model.LevelIntermediate,
			Format:      model.FormatVideo,
			Duration:    25,
			Progress:    progress(0),
			Image:       "https://cdn-icons-png.flaticon.com/512/2103/2103666.png",
			VideoURL:    "https://www.youtube.com/watch?v=TdfTsQD5z3s",
		},
		{
			ID:          11,
			Title:       "AI Career Guide",
			Description: "Learn about various career paths in AI and how to prepare for them",
			Category:    "Career",
			Level:       model.LevelBeginner,
			Format:      model.FormatVideo,
			Duration:    18,
			Progress:    progress(0),
			Image:       "https://cdn-icons-png.flaticon.com/512/2103/2103611.png",
			VideoURL:    "https://www.youtube.com/watch?v=2gPqU_CV9ZY",
		},
		{
			ID:          12,
			Title:       "Introduction to Generative AI",
			Description: "Learn the fundamentals of generative AI models and their applications",
			Category:    "Fundamentals",
			Level:       model.LevelIntermediate,
			Format:      model.FormatVideo,
			Duration:    15,
			Progress:    progress(0),
			Image:       "https://cdn-icons-png.flaticon.com/512/2103/2103652.png",
			VideoURL:    "https://www.youtube.com/watch?v=hfIUstzHs9A",
		},
		{
			ID:          13,
			Title:       "AI Ethics and Governance",
			Description: "Understanding the ethical implications and governance frameworks for AI",
			Category:    "Ethics",
			Level:       model.LevelIntermediate,
			Format:      model.FormatVideo,
			Duration:    22,
			Progress:    progress(0),
			Image:       "https://cdn-icons-png.flaticon.com/512/2103/2103618.png",
			VideoURL:    "https://www.youtube.com/watch?v=dvzAm-g4yBM",
		},
	}
}
