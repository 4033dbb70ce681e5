package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/learnhub/internal/cli/formatter"
	"github.com/alexanderramin/learnhub/internal/progress"
)

// eventBuffer bounds change events queued between two updates. Events past
// the limit are dropped; the next one still refreshes every view.
const eventBuffer = 64

// browseModel is the root bubbletea Model for the course browser.
// It manages a view stack and relays store change events to the views.
type browseModel struct {
	state       *SharedState
	viewStack   []View
	events      chan progress.ChangeEvent
	unsubscribe func()
	quitting    bool
}

func newBrowseModel(ctx context.Context, app *App) browseModel {
	state := newSharedState(ctx, app)
	events := make(chan progress.ChangeEvent, eventBuffer)
	unsubscribe := app.Progress.Subscribe(func(ev progress.ChangeEvent) {
		select {
		case events <- ev:
		default:
		}
	})
	return browseModel{
		state:       state,
		viewStack:   []View{newCourseListView(state)},
		events:      events,
		unsubscribe: unsubscribe,
	}
}

// Close detaches the model from the store.
func (m browseModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m *browseModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *browseModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// drainEvents applies queued change events and reports whether any arrived.
func (m *browseModel) drainEvents() bool {
	seen := false
	for {
		select {
		case ev := <-m.events:
			m.state.applyChange(ev)
			seen = true
		default:
			return seen
		}
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m browseModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.drainEvents() {
		m.broadcast(refreshViewMsg{})
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case refreshViewMsg:
		return m, m.broadcast(msg)

	case lessonToggledMsg:
		if msg.err != nil {
			m.state.setError(msg.err)
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// broadcast sends msg to every view on the stack so views below the top
// stay current.
func (m *browseModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

var (
	quitKey = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
	backKey = key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back"))
)

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, quitKey):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, backKey):
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())
	result := strings.Join(sections, "\n")

	// Pad to terminal height so the alt-screen renderer clears stale rows.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *browseModel) renderHeader() string {
	title := formatter.StylePurple.Render("learnhub")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		title += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + "\n" + sep
}

func (m *browseModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim(backKey.Help().Key+": "+backKey.Help().Desc))
	}
	hints = append(hints, formatter.Dim(quitKey.Help().Key+": "+quitKey.Help().Desc))

	status := ""
	if m.state.Status != "" {
		if m.state.StatusErr {
			status = formatter.StyleRed.Render(m.state.Status)
		} else {
			status = formatter.StyleGreen.Render(m.state.Status)
		}
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + status + "\n" + strings.Join(hints, "  ")
}
