package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/learnhub/internal/progress"
)

// SharedState holds context shared across all browser views via pointer.
type SharedState struct {
	App *App
	ctx context.Context

	// Terminal dimensions
	Width  int
	Height int

	// Status is the one-line notice under the content area.
	Status    string
	StatusErr bool

	// LastSeq is the sequence number of the newest change event seen.
	LastSeq uint64
}

func newSharedState(ctx context.Context, app *App) *SharedState {
	if ctx == nil {
		ctx = context.Background()
	}
	return &SharedState{App: app, ctx: ctx}
}

func (s *SharedState) Context() context.Context { return s.ctx }

// ContentHeight is the number of rows left for the active view after the
// header (2 rows) and status bar (3 rows).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-5, 3)
}

func (s *SharedState) setError(err error) {
	s.Status = err.Error()
	s.StatusErr = true
}

// applyChange turns a store event into the status line.
func (s *SharedState) applyChange(ev progress.ChangeEvent) {
	if ev.Seq <= s.LastSeq {
		return
	}
	s.LastSeq = ev.Seq
	s.StatusErr = false
	switch ev.Kind {
	case progress.ChangeReset:
		s.Status = "Progress reset"
	default:
		verb := "marked not completed"
		if ev.Completed {
			verb = "completed"
		}
		s.Status = fmt.Sprintf("%s/%s %s · %d lessons done", ev.CourseID, ev.LessonID, verb, ev.Snapshot.TotalCompleted())
	}
}
