package domain

type LessonType string

const (
	LessonVideo    LessonType = "video"
	LessonArticle  LessonType = "article"
	LessonExercise LessonType = "exercise"
	LessonQuiz     LessonType = "quiz"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// ValidLessonTypes is the canonical set of accepted lesson type strings.
var ValidLessonTypes = map[string]bool{
	"video": true, "article": true, "exercise": true, "quiz": true,
}

// ValidCourseLevels is the canonical set of accepted course level strings.
var ValidCourseLevels = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}
