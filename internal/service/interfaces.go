package service

import (
	"context"

	"github.com/alexanderramin/learnhub/internal/contract"
	"github.com/alexanderramin/learnhub/internal/domain"
	"github.com/alexanderramin/learnhub/internal/progress"
)

type CatalogService interface {
	ListCourses(ctx context.Context, category string) ([]domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	GetLesson(ctx context.Context, courseID, lessonID string) (*contract.LessonDetail, error)
	Categories(ctx context.Context) ([]string, error)
}

type ProgressService interface {
	Dashboard(ctx context.Context) (*contract.DashboardResponse, error)
	CourseDetail(ctx context.Context, courseID string) (*contract.CourseDetailResponse, error)
	LessonStatus(ctx context.Context, courseID, lessonID string) (*contract.LessonState, error)
	Toggle(ctx context.Context, courseID, lessonID string) (*contract.LessonState, error)
	SetCompleted(ctx context.Context, courseID, lessonID string, done bool) (*contract.LessonState, error)
	Profile(ctx context.Context) (*contract.ProfileResponse, error)
	Reset(ctx context.Context) error
	Subscribe(fn progress.Listener) (unsubscribe func())
}

// ProgressStore is the part of progress.Store the services depend on.
type ProgressStore interface {
	IsCompleted(courseID, lessonID string) bool
	TotalCompleted() int
	OverallProgressPercent(courses []domain.Course) int
	Toggle(courseID, lessonID string) progress.ChangeEvent
	SetCompleted(courseID, lessonID string, done bool) (progress.ChangeEvent, bool)
	Reset() progress.ChangeEvent
	Subscribe(fn progress.Listener) (unsubscribe func())
}

var _ ProgressStore = (*progress.Store)(nil)
