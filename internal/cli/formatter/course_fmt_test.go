package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/learnhub/internal/contract"
	"github.com/alexanderramin/learnhub/internal/domain"
	"github.com/alexanderramin/learnhub/internal/storage"
)

func sampleCourse() domain.Course {
	return domain.Course{
		ID:              "go-101",
		Title:           "Go 101",
		Icon:            "🐹",
		Level:           domain.LevelBeginner,
		Category:        "Go",
		DurationHours:   3,
		Instructor:      "Rob",
		Rating:          4.75,
		EnrollmentCount: 12000,
		Skills:          []string{"Goroutines"},
		Modules: []domain.Module{{
			ID:    "m1",
			Title: "Basics",
			Lessons: []domain.Lesson{
				{ID: "l1", Title: "Hello", DurationMin: 10, Type: domain.LessonVideo},
				{ID: "l2", Title: "Types", DurationMin: 75, Type: domain.LessonArticle},
			},
		}},
	}
}

func TestFormatCourseList(t *testing.T) {
	c := sampleCourse()
	out := FormatCourseList([]domain.Course{c}, map[string]contract.CourseProgressView{
		"go-101": {CourseID: "go-101", Completed: 1, Total: 2, Percent: 50},
	})
	assert.Contains(t, out, "go-101")
	assert.Contains(t, out, "🐹 Go 101")
	assert.Contains(t, out, "Beginner")
	assert.Contains(t, out, " 50%")

	assert.Contains(t, FormatCourseList(nil, nil), "No courses")
}

func TestFormatCourseDetail(t *testing.T) {
	c := sampleCourse()
	out := FormatCourseDetail(&contract.CourseDetailResponse{
		Course:   c,
		Progress: contract.CourseProgressView{Completed: 1, Total: 2, Percent: 50},
		Modules: []contract.ModuleView{{
			ID: "m1", Title: "Basics", Completed: 1, Total: 2,
			Lessons: []contract.LessonView{
				{ID: "l1", Title: "Hello", DurationMin: 10, Type: domain.LessonVideo, Completed: true},
				{ID: "l2", Title: "Types", DurationMin: 75, Type: domain.LessonArticle},
			},
		}},
	})
	assert.Contains(t, out, "GO 101")
	assert.Contains(t, out, "★ 4.8")
	assert.Contains(t, out, "12,000 enrolled")
	assert.Contains(t, out, "1/2 lessons")
	assert.Contains(t, out, "Goroutines")
	assert.Contains(t, out, "✔ l1  Hello")
	assert.Contains(t, out, "○ l2  Types")
	assert.Contains(t, out, "[ 1h 15m article ]")
}

func TestFormatLesson(t *testing.T) {
	detail := &contract.LessonDetail{
		CourseID:    "go-101",
		CourseTitle: "Go 101",
		Module:      domain.Module{ID: "m1", Title: "Basics"},
		Lesson: domain.Lesson{
			ID: "l1", Title: "Hello", DurationMin: 10, Type: domain.LessonVideo,
			Content:     "# Hello\n\n- one\n**Bold line**",
			KeyPoints:   []string{"remember this"},
			CodeExample: &domain.CodeSample{Language: "go", Code: "fmt.Println(1)"},
		},
	}

	out := FormatLesson(detail, true)
	assert.Contains(t, out, "HELLO")
	assert.Contains(t, out, "✔ completed")
	assert.Contains(t, out, "• one")
	assert.Contains(t, out, "Bold line")
	assert.NotContains(t, out, "**")
	assert.Contains(t, out, "remember this")
	assert.Contains(t, out, "Code (go)")
	assert.Contains(t, out, "fmt.Println(1)")

	detail.Lesson.CodeExample = nil
	detail.Lesson.KeyPoints = nil
	out = FormatLesson(detail, false)
	assert.Contains(t, out, "not completed")
	assert.NotContains(t, out, "Key points")
	assert.NotContains(t, out, "Code")
}

func TestFormatLessonState(t *testing.T) {
	out := FormatLessonState(&contract.LessonState{
		CourseID: "c", LessonID: "l", Completed: true, Changed: true,
		CourseCompleted: 1, CourseTotal: 3, CoursePercent: 33,
	})
	assert.Contains(t, out, "c/l completed")
	assert.Contains(t, out, " 33%")
	assert.Contains(t, out, "1/3")

	out = FormatLessonState(&contract.LessonState{CourseID: "c", LessonID: "l", Completed: true})
	assert.Contains(t, out, "already completed")
}

func TestFormatDashboardAndProfile(t *testing.T) {
	out := FormatDashboard(&contract.DashboardResponse{
		Stats: contract.QuickStats{Courses: 3, Lessons: 15, ContentHours: 128, LessonsCompleted: 3, OverallPercent: 20},
		Courses: []contract.CourseProgressView{
			{Title: "A", Icon: "🐍", Completed: 3, Total: 10, Percent: 30},
		},
	})
	assert.Contains(t, out, "YOUR PROGRESS")
	assert.Contains(t, out, "3/15")
	assert.Contains(t, out, "128")
	assert.Contains(t, out, "🐍 A")
	assert.Contains(t, out, "3/10")

	out = FormatProfile(&contract.ProfileResponse{LessonsCompleted: 7, Courses: 3, CoursesStarted: 2, CoursesFinished: 1, OverallPercent: 47})
	assert.Contains(t, out, "Lessons done")
	assert.Contains(t, out, " 47%")
}

func TestFormatStorageInfo(t *testing.T) {
	out := FormatStorageInfo(storage.Info{Backend: "sqlite", Location: "/tmp/x.db", Key: "k"})
	assert.Contains(t, out, "none saved yet")

	out = FormatStorageInfo(storage.Info{
		Backend: "file", Location: "/tmp/p.json", Found: true, SizeBytes: 42,
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	assert.Contains(t, out, "42 bytes")
	assert.Contains(t, out, "Updated")
	assert.NotContains(t, out, "Key")
	assert.NotContains(t, out, "Records")

	out = FormatStorageInfo(storage.Info{Backend: "sqlite", Key: "k", Records: []string{"k", "old"}})
	assert.Contains(t, out, "k, old")
}
