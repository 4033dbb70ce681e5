package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/learnhub/internal/domain"
	"github.com/alexanderramin/learnhub/internal/testutil"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	courses := c.Courses()
	require.Len(t, courses, 3)
	assert.Equal(t, "python-masterclass", courses[0].ID)
	assert.Equal(t, "ml-fundamentals", courses[1].ID)
	assert.Equal(t, "deep-learning", courses[2].ID)

	assert.Equal(t, 10, courses[0].TotalLessons())
	assert.Equal(t, 4, courses[1].TotalLessons())
	assert.Equal(t, 1, courses[2].TotalLessons())
	assert.Equal(t, 15, c.TotalLessons())
	assert.Equal(t, 128, c.TotalDurationHours())

	assert.Equal(t, []string{"Python", "Machine Learning", "Deep Learning"}, c.Categories())
}

func TestDefault_LessonDetails(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	lesson, module, err := c.Lesson("python-masterclass", "py-1-1")
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Python & Environment Setup", lesson.Title)
	assert.Equal(t, 20, lesson.DurationMin)
	assert.Equal(t, domain.LessonVideo, lesson.Type)
	assert.True(t, lesson.HasKeyPoints())
	assert.True(t, lesson.HasCode())
	assert.Equal(t, "py-mod-1", module.ID)

	lesson, module, err = c.Lesson("python-masterclass", "py-1-4")
	require.NoError(t, err)
	assert.False(t, lesson.HasCode())
	assert.Equal(t, "py-mod-1", module.ID)

	course, err := c.Course("deep-learning")
	require.NoError(t, err)
	assert.Equal(t, domain.LevelAdvanced, course.Level)
	assert.Equal(t, "Dr. Emily Watson", course.Instructor)
	assert.Equal(t, 67230, course.EnrollmentCount)
}

func TestLookups_NotFound(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Course("rust-101")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = c.Lesson("rust-101", "py-1-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Lesson ids are scoped to their course.
	_, _, err = c.Lesson("ml-fundamentals", "py-1-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, c.HasLesson("ml-fundamentals", "py-1-1"))
	assert.True(t, c.HasLesson("ml-fundamentals", "ml-2-2"))
}

func TestFilterByCategory(t *testing.T) {
	c, err := New([]domain.Course{
		testutil.NewTestCourse("a", testutil.WithCategory("Go")),
		testutil.NewTestCourse("b", testutil.WithCategory("Rust")),
		testutil.NewTestCourse("c", testutil.WithCategory("Go")),
	})
	require.NoError(t, err)

	ids := func(cs []domain.Course) []string {
		var out []string
		for _, course := range cs {
			out = append(out, course.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "c"}, ids(c.FilterByCategory("Go")))
	assert.Equal(t, []string{"a", "b", "c"}, ids(c.FilterByCategory(AllCategories)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(c.FilterByCategory("")))
	assert.Empty(t, c.FilterByCategory("Haskell"))
	assert.Equal(t, []string{"Go", "Rust"}, c.Categories())
}

func TestCoursesReturnsCopy(t *testing.T) {
	c, err := New([]domain.Course{testutil.NewTestCourse("a")})
	require.NoError(t, err)

	got := c.Courses()
	got[0].ID = "mutated"

	course, err := c.Course("a")
	require.NoError(t, err)
	assert.Equal(t, "a", course.ID)
}

func TestNew_CrossRecordRules(t *testing.T) {
	tests := []struct {
		name    string
		courses []domain.Course
		want    string
	}{
		{
			name:    "empty",
			courses: nil,
			want:    "no courses",
		},
		{
			name: "duplicate course",
			courses: []domain.Course{
				testutil.NewTestCourse("a"),
				testutil.NewTestCourse("a"),
			},
			want: `duplicate course id "a"`,
		},
		{
			name: "duplicate lesson across modules",
			courses: []domain.Course{
				testutil.NewTestCourse("a",
					testutil.WithModule("m1", "l1"),
					testutil.WithModule("m2", "l1")),
			},
			want: `duplicate lesson id "l1"`,
		},
		{
			name: "duplicate module",
			courses: []domain.Course{
				testutil.NewTestCourse("a",
					testutil.WithModule("m1", "l1"),
					testutil.WithModule("m1", "l2")),
			},
			want: `duplicate module id "m1"`,
		},
		{
			name: "empty module",
			courses: []domain.Course{
				testutil.NewTestCourse("a", testutil.WithModule("m1")),
			},
			want: `module "m1" has no lessons`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.courses)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNew_SameLessonIDInDifferentCourses(t *testing.T) {
	_, err := New([]domain.Course{
		testutil.NewTestCourse("a", testutil.WithModule("m1", "intro")),
		testutil.NewTestCourse("b", testutil.WithModule("m1", "intro")),
	})
	assert.NoError(t, err)
}

const minimalYAML = `
courses:
  - id: go-basics
    title: Go Basics
    level: beginner
    category: Go
    duration_hours: 2
    rating: 4.2
    modules:
      - id: m1
        title: Start
        lessons:
          - id: hello
            title: Hello
            duration_min: 5
            type: exercise
            content: |
              Write hello world.
            code:
              language: go
              source: |
                fmt.Println("hello")
`

func TestLoad_Minimal(t *testing.T) {
	c, err := Load(strings.NewReader(minimalYAML))
	require.NoError(t, err)

	lesson, _, err := c.Lesson("go-basics", "hello")
	require.NoError(t, err)
	assert.Equal(t, domain.LessonExercise, lesson.Type)
	assert.Equal(t, "Write hello world.", lesson.Content)
	require.NotNil(t, lesson.CodeExample)
	assert.Equal(t, `fmt.Println("hello")`, lesson.CodeExample.Code)
	assert.Equal(t, "go", lesson.CodeExample.Language)
}

func TestLoad_FieldErrorsUseYAMLNames(t *testing.T) {
	bad := strings.NewReplacer(
		"level: beginner", "level: expert",
		"duration_min: 5", "duration_min: 0",
		"rating: 4.2", "rating: 7",
	).Replace(minimalYAML)

	_, err := Load(strings.NewReader(bad))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)

	msg := err.Error()
	assert.Contains(t, msg, "courses[0].level")
	assert.Contains(t, msg, "courses[0].rating")
	assert.Contains(t, msg, "courses[0].modules[0].lessons[0].duration_min")
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	bad := strings.Replace(minimalYAML, "rating: 4.2", "rating: 4.2\n    price: 10", 1)
	_, err := Load(strings.NewReader(bad))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_MissingModules(t *testing.T) {
	_, err := Load(strings.NewReader("courses:\n  - id: x\n    title: X\n    level: beginner\n    category: C\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "courses[0].modules")
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	c, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalLessons())

	c, err = Open("")
	require.NoError(t, err)
	assert.Equal(t, 15, c.TotalLessons())

	_, err = Open(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSchemaValidator_Messages(t *testing.T) {
	v := newSchemaValidator()
	require.NotNil(t, v.trans)

	errs := v.Struct(&Schema{})
	require.Len(t, errs, 1)
	assert.Equal(t, "courses: courses is a required field", errs[0].Error())

	// Without a translator the validator's own message is used.
	v.trans = nil
	errs = v.Struct(&Schema{})
	require.Len(t, errs, 1)
	assert.True(t, strings.HasPrefix(errs[0].Error(), "courses: "))
	assert.Contains(t, errs[0].Error(), "failed on the 'required' tag")
}
