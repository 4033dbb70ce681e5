package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/learnhub/internal/cli/formatter"
	"github.com/alexanderramin/learnhub/internal/contract"
)

var lessonToggleKey = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done"))

// lessonView renders one lesson in a scrollable viewport.
type lessonView struct {
	state    *SharedState
	courseID string
	lessonID string
	detail   *contract.LessonDetail
	done     bool
	vp       viewport.Model
	err      error
}

func newLessonView(state *SharedState, courseID, lessonID string) *lessonView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.KeyMap = lessonViewportKeyMap()
	vp.MouseWheelEnabled = true
	return &lessonView{state: state, courseID: courseID, lessonID: lessonID, vp: vp}
}

// lessonViewportKeyMap leaves space free for toggling completion.
func lessonViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "f")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "b")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u", "u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d", "d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

func (v *lessonView) ID() ViewID { return ViewLesson }

func (v *lessonView) Title() string {
	if v.detail != nil {
		return v.detail.Lesson.Title
	}
	return v.lessonID
}

func (v *lessonView) ShortHelp() []key.Binding {
	return []key.Binding{
		lessonToggleKey,
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}

func (v *lessonView) Init() tea.Cmd {
	v.load()
	return nil
}

func (v *lessonView) load() {
	ctx := v.state.Context()
	detail, err := v.state.App.Catalog.GetLesson(ctx, v.courseID, v.lessonID)
	if err != nil {
		v.err = err
		return
	}
	status, err := v.state.App.Progress.LessonStatus(ctx, v.courseID, v.lessonID)
	if err != nil {
		v.err = err
		return
	}
	v.err = nil
	v.detail = detail
	v.done = status.Completed
	v.vp.SetContent(formatter.FormatLesson(detail, v.done))
}

func (v *lessonView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.load()
		return v, nil

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, lessonToggleKey) {
			return v, toggleLesson(v.state, v.courseID, v.lessonID)
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *lessonView) View() string {
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}
	return v.vp.View()
}
