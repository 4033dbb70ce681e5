// Package catalog provides the read-only course catalog. The catalog is
// authored in YAML; a default copy is embedded in the binary and an
// external file can replace it.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/learnhub/internal/domain"
)

// AllCategories selects every course in FilterByCategory.
const AllCategories = "All"

var (
	// ErrNotFound is returned when a course or lesson id is not in the catalog.
	ErrNotFound = errors.New("not found")

	// ErrInvalid wraps every problem found while loading a catalog.
	ErrInvalid = errors.New("invalid catalog")
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

type lessonIndex struct {
	module int
	lesson int
}

// Catalog is an immutable, indexed set of courses. It is safe for
// concurrent use. Returned values share slices with the catalog and must
// be treated as read-only.
type Catalog struct {
	courses  []domain.Course
	byID     map[string]int
	lessons  map[string]map[string]lessonIndex
	category []string
}

// New indexes courses after checking cross-record rules.
func New(courses []domain.Course) (*Catalog, error) {
	if errs := ValidateCourses(courses); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	c := &Catalog{
		courses: courses,
		byID:    make(map[string]int, len(courses)),
		lessons: make(map[string]map[string]lessonIndex, len(courses)),
	}
	seenCategory := make(map[string]bool)
	for i, course := range courses {
		c.byID[course.ID] = i
		idx := make(map[string]lessonIndex, course.TotalLessons())
		for mi, m := range course.Modules {
			for li, l := range m.Lessons {
				idx[l.ID] = lessonIndex{module: mi, lesson: li}
			}
		}
		c.lessons[course.ID] = idx
		if !seenCategory[course.Category] {
			seenCategory[course.Category] = true
			c.category = append(c.category, course.Category)
		}
	}
	return c, nil
}

// Load parses and validates a YAML catalog. Unknown keys are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var schema Schema
	if err := dec.Decode(&schema); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: parsing yaml: %w", ErrInvalid, err)
	}
	if errs := ValidateSchema(&schema); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return New(convertSchema(&schema))
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// Open returns the catalog at path, or the embedded one when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Courses returns every course in catalog order.
func (c *Catalog) Courses() []domain.Course {
	out := make([]domain.Course, len(c.courses))
	copy(out, c.courses)
	return out
}

func (c *Catalog) Course(id string) (domain.Course, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Course{}, fmt.Errorf("course %q: %w", id, ErrNotFound)
	}
	return c.courses[i], nil
}

// Lesson returns a lesson and the module that holds it.
func (c *Catalog) Lesson(courseID, lessonID string) (domain.Lesson, domain.Module, error) {
	i, ok := c.byID[courseID]
	if !ok {
		return domain.Lesson{}, domain.Module{}, fmt.Errorf("course %q: %w", courseID, ErrNotFound)
	}
	idx, ok := c.lessons[courseID][lessonID]
	if !ok {
		return domain.Lesson{}, domain.Module{}, fmt.Errorf("lesson %q in course %q: %w", lessonID, courseID, ErrNotFound)
	}
	m := c.courses[i].Modules[idx.module]
	return m.Lessons[idx.lesson], m, nil
}

// HasLesson reports whether lessonID belongs to courseID.
func (c *Catalog) HasLesson(courseID, lessonID string) bool {
	_, ok := c.lessons[courseID][lessonID]
	return ok
}

// Categories lists distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.category))
	copy(out, c.category)
	return out
}

// FilterByCategory returns courses in category. Empty or AllCategories
// returns every course.
func (c *Catalog) FilterByCategory(category string) []domain.Course {
	if category == "" || category == AllCategories {
		return c.Courses()
	}
	var out []domain.Course
	for _, course := range c.courses {
		if course.Category == category {
			out = append(out, course)
		}
	}
	return out
}

// TotalLessons counts lessons across every course.
func (c *Catalog) TotalLessons() int {
	n := 0
	for i := range c.courses {
		n += c.courses[i].TotalLessons()
	}
	return n
}

// TotalDurationHours sums the advertised course durations.
func (c *Catalog) TotalDurationHours() int {
	n := 0
	for _, course := range c.courses {
		n += course.DurationHours
	}
	return n
}
