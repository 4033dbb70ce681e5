package service

import (
	"context"

	"github.com/alexanderramin/learnhub/internal/catalog"
	"github.com/alexanderramin/learnhub/internal/contract"
	"github.com/alexanderramin/learnhub/internal/domain"
)

type catalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(c *catalog.Catalog) CatalogService {
	return &catalogService{catalog: c}
}

func (s *catalogService) ListCourses(_ context.Context, category string) ([]domain.Course, error) {
	return s.catalog.FilterByCategory(category), nil
}

func (s *catalogService) GetCourse(_ context.Context, id string) (*domain.Course, error) {
	c, err := s.catalog.Course(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *catalogService) GetLesson(_ context.Context, courseID, lessonID string) (*contract.LessonDetail, error) {
	course, err := s.catalog.Course(courseID)
	if err != nil {
		return nil, err
	}
	lesson, module, err := s.catalog.Lesson(courseID, lessonID)
	if err != nil {
		return nil, err
	}
	return &contract.LessonDetail{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		Module:      module,
		Lesson:      lesson,
	}, nil
}

func (s *catalogService) Categories(context.Context) ([]string, error) {
	return s.catalog.Categories(), nil
}
