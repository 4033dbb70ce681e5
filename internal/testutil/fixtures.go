package testutil

import (
	"fmt"

	"github.com/alexanderramin/learnhub/internal/domain"
)

// Course options
type CourseOption func(*domain.Course)

func WithCategory(category string) CourseOption {
	return func(c *domain.Course) {
		c.Category = category
	}
}

func WithLevel(level domain.CourseLevel) CourseOption {
	return func(c *domain.Course) {
		c.Level = level
	}
}

// WithModule appends a module holding the given lesson IDs. Lessons get
// a 10 minute duration and the video type.
func WithModule(moduleID string, lessonIDs ...string) CourseOption {
	return func(c *domain.Course) {
		m := domain.Module{ID: moduleID, Title: "Module " + moduleID}
		for _, id := range lessonIDs {
			m.Lessons = append(m.Lessons, NewTestLesson(id))
		}
		c.Modules = append(c.Modules, m)
	}
}

// NewTestCourse builds a course. Without WithModule options it gets a
// single module with three lessons named "<id>-l1".."<id>-l3".
func NewTestCourse(id string, opts ...CourseOption) domain.Course {
	c := domain.Course{
		ID:            id,
		Title:         "Course " + id,
		Description:   "Test course " + id,
		Level:         domain.LevelBeginner,
		Category:      "Testing",
		DurationHours: 1,
		Instructor:    "Test Instructor",
		Rating:        4.5,
		Icon:          "*",
	}
	for _, opt := range opts {
		opt(&c)
	}
	if len(c.Modules) == 0 {
		WithModule(id+"-m1", id+"-l1", id+"-l2", id+"-l3")(&c)
	}
	return c
}

func NewTestLesson(id string) domain.Lesson {
	return domain.Lesson{
		ID:          id,
		Title:       fmt.Sprintf("Lesson %s", id),
		DurationMin: 10,
		Type:        domain.LessonVideo,
		Content:     "Content for " + id,
	}
}
