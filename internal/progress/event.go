package progress

import "github.com/alexanderramin/learnhub/internal/domain"

type ChangeKind string

const (
	ChangeToggle ChangeKind = "toggle"
	ChangeSet    ChangeKind = "set"
	ChangeReset  ChangeKind = "reset"
)

// ChangeEvent describes one mutation. Snapshot is a copy of the whole map
// after the mutation, shared by all listeners of that event: read it from
// any goroutine, never modify it.
type ChangeEvent struct {
	Seq       uint64
	Kind      ChangeKind
	CourseID  string
	LessonID  string
	Completed bool
	Snapshot  domain.CompletionMap
}

// Listener receives change events. Listeners run on the mutating goroutine
// and must not block.
type Listener func(ChangeEvent)
