// Package contract holds the response types services hand to presentation.
package contract

import "github.com/alexanderramin/learnhub/internal/domain"

// QuickStats is the headline block on the dashboard.
type QuickStats struct {
	Courses          int
	Lessons          int
	ContentHours     int
	LessonsCompleted int
	OverallPercent   int
}

// CourseProgressView is one course row with its completion numbers.
type CourseProgressView struct {
	CourseID  string
	Title     string
	Icon      string
	Category  string
	Level     domain.CourseLevel
	Completed int
	Total     int
	Percent   int
}

// Started reports whether at least one lesson is completed.
func (v CourseProgressView) Started() bool { return v.Completed > 0 }

// Finished reports whether every lesson is completed.
func (v CourseProgressView) Finished() bool { return v.Total > 0 && v.Completed >= v.Total }

type DashboardResponse struct {
	Stats   QuickStats
	Courses []CourseProgressView
}

type LessonView struct {
	ID          string
	Title       string
	Type        domain.LessonType
	DurationMin int
	Completed   bool
}

type ModuleView struct {
	ID          string
	Title       string
	Description string
	Completed   int
	Total       int
	Lessons     []LessonView
}

type CourseDetailResponse struct {
	Course   domain.Course
	Progress CourseProgressView
	Modules  []ModuleView
}

// LessonDetail is a lesson located in its course and module.
type LessonDetail struct {
	CourseID    string
	CourseTitle string
	Module      domain.Module
	Lesson      domain.Lesson
}

// LessonState is the completion flag of one lesson together with the
// resulting course numbers.
type LessonState struct {
	CourseID        string
	LessonID        string
	Completed       bool
	Changed         bool
	CourseCompleted int
	CourseTotal     int
	CoursePercent   int
}

type ProfileResponse struct {
	LessonsCompleted int
	Courses          int
	CoursesStarted   int
	CoursesFinished  int
	OverallPercent   int
}
