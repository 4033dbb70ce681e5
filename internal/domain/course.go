package domain

// Course is the top-level catalog unit. Courses are read-only once loaded.
type Course struct {
	ID              string
	Title           string
	Description     string
	Level           CourseLevel
	Category        string
	DurationHours   int
	Instructor      string
	Rating          float64
	EnrollmentCount int
	Icon            string
	Skills          []string
	Prerequisites   []string
	Outcomes        []string
	Modules         []Module
}

type Module struct {
	ID          string
	Title       string
	Description string
	Lessons     []Lesson
}

// Lesson is the smallest catalog unit. CodeExample and KeyPoints are
// optional; use HasCode and HasKeyPoints rather than inspecting them.
type Lesson struct {
	ID          string
	Title       string
	DurationMin int
	Type        LessonType
	Content     string
	CodeExample *CodeSample
	KeyPoints   []string
}

// CodeSample is a snippet attached to a lesson.
type CodeSample struct {
	Language string
	Code     string
}

func (l *Lesson) HasCode() bool {
	return l.CodeExample != nil && l.CodeExample.Code != ""
}

func (l *Lesson) HasKeyPoints() bool {
	return len(l.KeyPoints) > 0
}

// TotalLessons counts lessons across all modules.
func (c *Course) TotalLessons() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Lessons)
	}
	return n
}

// LessonIDs returns lesson identifiers in catalog order.
func (c *Course) LessonIDs() []string {
	ids := make([]string, 0, c.TotalLessons())
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

// TotalDurationMin sums lesson durations, which can differ from the
// advertised DurationHours.
func (c *Course) TotalDurationMin() int {
	n := 0
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			n += l.DurationMin
		}
	}
	return n
}
