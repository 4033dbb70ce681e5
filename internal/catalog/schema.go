package catalog

// Schema is the top-level YAML structure of a catalog file.
type Schema struct {
	Courses []CourseSchema `yaml:"courses" validate:"required,min=1,dive"`
}

// CourseSchema defines one course in the catalog file.
type CourseSchema struct {
	ID              string         `yaml:"id" validate:"required"`
	Title           string         `yaml:"title" validate:"required"`
	Description     string         `yaml:"description"`
	Level           string         `yaml:"level" validate:"required,oneof=beginner intermediate advanced"`
	Category        string         `yaml:"category" validate:"required"`
	DurationHours   int            `yaml:"duration_hours" validate:"gte=0"`
	Instructor      string         `yaml:"instructor"`
	Rating          float64        `yaml:"rating" validate:"gte=0,lte=5"`
	EnrollmentCount int            `yaml:"enrollment_count" validate:"gte=0"`
	Icon            string         `yaml:"icon"`
	Skills          []string       `yaml:"skills"`
	Prerequisites   []string       `yaml:"prerequisites"`
	Outcomes        []string       `yaml:"outcomes"`
	Modules         []ModuleSchema `yaml:"modules" validate:"required,min=1,dive"`
}

// ModuleSchema defines a module within a course.
type ModuleSchema struct {
	ID          string         `yaml:"id" validate:"required"`
	Title       string         `yaml:"title" validate:"required"`
	Description string         `yaml:"description"`
	Lessons     []LessonSchema `yaml:"lessons" validate:"required,min=1,dive"`
}

// LessonSchema defines a lesson within a module.
type LessonSchema struct {
	ID          string      `yaml:"id" validate:"required"`
	Title       string      `yaml:"title" validate:"required"`
	DurationMin int         `yaml:"duration_min" validate:"gt=0"`
	Type        string      `yaml:"type" validate:"required,oneof=video article exercise quiz"`
	Content     string      `yaml:"content"`
	KeyPoints   []string    `yaml:"key_points"`
	Code        *CodeSchema `yaml:"code,omitempty"`
}

// CodeSchema is an optional code sample attached to a lesson.
type CodeSchema struct {
	Language string `yaml:"language" validate:"required"`
	Source   string `yaml:"source" validate:"required"`
}
