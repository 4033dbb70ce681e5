package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/learnhub/internal/contract"
)

// Navigation messages used by views to request view transitions.
// The browseModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg returns to the previous view.
type popViewMsg struct{}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// lessonToggledMsg carries the result of a completion change started by a view.
type lessonToggledMsg struct {
	state *contract.LessonState
	err   error
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// toggleLesson flips one lesson through the progress service.
func toggleLesson(state *SharedState, courseID, lessonID string) tea.Cmd {
	return func() tea.Msg {
		ls, err := state.App.Progress.Toggle(state.Context(), courseID, lessonID)
		return lessonToggledMsg{state: ls, err: err}
	}
}
