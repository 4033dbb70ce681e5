package catalog

import (
	"strings"

	"github.com/alexanderramin/learnhub/internal/domain"
)

// convertSchema maps validated schema records onto domain types.
func convertSchema(s *Schema) []domain.Course {
	courses := make([]domain.Course, 0, len(s.Courses))
	for _, cs := range s.Courses {
		c := domain.Course{
			ID:              cs.ID,
			Title:           cs.Title,
			Description:     strings.TrimSpace(cs.Description),
			Level:           domain.CourseLevel(cs.Level),
			Category:        cs.Category,
			DurationHours:   cs.DurationHours,
			Instructor:      cs.Instructor,
			Rating:          cs.Rating,
			EnrollmentCount: cs.EnrollmentCount,
			Icon:            cs.Icon,
			Skills:          cs.Skills,
			Prerequisites:   cs.Prerequisites,
			Outcomes:        cs.Outcomes,
			Modules:         make([]domain.Module, 0, len(cs.Modules)),
		}
		for _, ms := range cs.Modules {
			m := domain.Module{
				ID:          ms.ID,
				Title:       ms.Title,
				Description: ms.Description,
				Lessons:     make([]domain.Lesson, 0, len(ms.Lessons)),
			}
			for _, ls := range ms.Lessons {
				m.Lessons = append(m.Lessons, convertLesson(ls))
			}
			c.Modules = append(c.Modules, m)
		}
		courses = append(courses, c)
	}
	return courses
}

func convertLesson(ls LessonSchema) domain.Lesson {
	l := domain.Lesson{
		ID:          ls.ID,
		Title:       ls.Title,
		DurationMin: ls.DurationMin,
		Type:        domain.LessonType(ls.Type),
		Content:     strings.TrimRight(ls.Content, "\n"),
		KeyPoints:   ls.KeyPoints,
	}
	if ls.Code != nil {
		l.CodeExample = &domain.CodeSample{
			Language: ls.Code.Language,
			Code:     strings.TrimRight(ls.Code.Source, "\n"),
		}
	}
	return l
}
