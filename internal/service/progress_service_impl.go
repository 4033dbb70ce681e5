package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/learnhub/internal/catalog"
	"github.com/alexanderramin/learnhub/internal/contract"
	"github.com/alexanderramin/learnhub/internal/domain"
	"github.com/alexanderramin/learnhub/internal/progress"
)

type progressService struct {
	catalog  *catalog.Catalog
	store    ProgressStore
	observer UseCaseObserver
}

func NewProgressService(
	c *catalog.Catalog,
	store ProgressStore,
	observers ...UseCaseObserver,
) ProgressService {
	return &progressService{
		catalog:  c,
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) Dashboard(context.Context) (*contract.DashboardResponse, error) {
	courses := s.catalog.Courses()
	views := make([]contract.CourseProgressView, 0, len(courses))
	for i := range courses {
		views = append(views, s.courseView(&courses[i]))
	}
	return &contract.DashboardResponse{
		Stats: contract.QuickStats{
			Courses:          len(courses),
			Lessons:          s.catalog.TotalLessons(),
			ContentHours:     s.catalog.TotalDurationHours(),
			LessonsCompleted: s.store.TotalCompleted(),
			OverallPercent:   s.store.OverallProgressPercent(courses),
		},
		Courses: views,
	}, nil
}

func (s *progressService) CourseDetail(_ context.Context, courseID string) (*contract.CourseDetailResponse, error) {
	course, err := s.catalog.Course(courseID)
	if err != nil {
		return nil, err
	}

	modules := make([]contract.ModuleView, 0, len(course.Modules))
	for _, m := range course.Modules {
		mv := contract.ModuleView{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Total:       len(m.Lessons),
			Lessons:     make([]contract.LessonView, 0, len(m.Lessons)),
		}
		for _, l := range m.Lessons {
			done := s.store.IsCompleted(course.ID, l.ID)
			if done {
				mv.Completed++
			}
			mv.Lessons = append(mv.Lessons, contract.LessonView{
				ID:          l.ID,
				Title:       l.Title,
				Type:        l.Type,
				DurationMin: l.DurationMin,
				Completed:   done,
			})
		}
		modules = append(modules, mv)
	}

	return &contract.CourseDetailResponse{
		Course:   course,
		Progress: s.courseView(&course),
		Modules:  modules,
	}, nil
}

func (s *progressService) LessonStatus(_ context.Context, courseID, lessonID string) (*contract.LessonState, error) {
	course, err := s.lessonCourse(courseID, lessonID)
	if err != nil {
		return nil, err
	}
	return s.lessonState(&course, lessonID, s.store.IsCompleted(courseID, lessonID), false), nil
}

func (s *progressService) Toggle(ctx context.Context, courseID, lessonID string) (state *contract.LessonState, err error) {
	fields := map[string]any{"course": courseID, "lesson": lessonID}
	defer observe(ctx, s.observer, "toggle-lesson", fields)(&err)

	course, err := s.lessonCourse(courseID, lessonID)
	if err != nil {
		return nil, err
	}
	ev := s.store.Toggle(courseID, lessonID)
	fields["completed"] = ev.Completed
	return s.lessonState(&course, lessonID, ev.Completed, true), nil
}

func (s *progressService) SetCompleted(ctx context.Context, courseID, lessonID string, done bool) (state *contract.LessonState, err error) {
	fields := map[string]any{"course": courseID, "lesson": lessonID, "completed": done}
	defer observe(ctx, s.observer, "set-lesson", fields)(&err)

	course, err := s.lessonCourse(courseID, lessonID)
	if err != nil {
		return nil, err
	}
	_, changed := s.store.SetCompleted(courseID, lessonID, done)
	fields["changed"] = changed
	return s.lessonState(&course, lessonID, done, changed), nil
}

func (s *progressService) Profile(context.Context) (*contract.ProfileResponse, error) {
	courses := s.catalog.Courses()
	resp := &contract.ProfileResponse{
		LessonsCompleted: s.store.TotalCompleted(),
		Courses:          len(courses),
		OverallPercent:   s.store.OverallProgressPercent(courses),
	}
	for i := range courses {
		v := s.courseView(&courses[i])
		if v.Started() {
			resp.CoursesStarted++
		}
		if v.Finished() {
			resp.CoursesFinished++
		}
	}
	return resp, nil
}

func (s *progressService) Reset(ctx context.Context) (err error) {
	fields := map[string]any{"lessons_cleared": s.store.TotalCompleted()}
	defer observe(ctx, s.observer, "reset-progress", fields)(&err)

	s.store.Reset()
	return nil
}

func (s *progressService) Subscribe(fn progress.Listener) func() {
	return s.store.Subscribe(fn)
}

// lessonCourse resolves the course that owns lessonID, rejecting pairs the
// catalog does not know.
func (s *progressService) lessonCourse(courseID, lessonID string) (domain.Course, error) {
	course, err := s.catalog.Course(courseID)
	if err != nil {
		return domain.Course{}, err
	}
	if !s.catalog.HasLesson(courseID, lessonID) {
		return domain.Course{}, fmt.Errorf("lesson %q in course %q: %w", lessonID, courseID, catalog.ErrNotFound)
	}
	return course, nil
}

func (s *progressService) courseView(c *domain.Course) contract.CourseProgressView {
	total := c.TotalLessons()
	completed := s.catalogCompleted(c)
	return contract.CourseProgressView{
		CourseID:  c.ID,
		Title:     c.Title,
		Icon:      c.Icon,
		Category:  c.Category,
		Level:     c.Level,
		Completed: completed,
		Total:     total,
		Percent:   domain.Percent(completed, total),
	}
}

// catalogCompleted counts completed lessons that still exist in the
// catalog. Stale ids in the store are ignored so a row never shows more
// completed lessons than it has.
func (s *progressService) catalogCompleted(c *domain.Course) int {
	n := 0
	for _, id := range c.LessonIDs() {
		if s.store.IsCompleted(c.ID, id) {
			n++
		}
	}
	return n
}

func (s *progressService) lessonState(c *domain.Course, lessonID string, done, changed bool) *contract.LessonState {
	v := s.courseView(c)
	return &contract.LessonState{
		CourseID:        c.ID,
		LessonID:        lessonID,
		Completed:       done,
		Changed:         changed,
		CourseCompleted: v.Completed,
		CourseTotal:     v.Total,
		CoursePercent:   v.Percent,
	}
}
