package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/learnhub/internal/cli/formatter"
	"github.com/alexanderramin/learnhub/internal/contract"
)

// courseRow is a flattened row in the course outline. Module rows are
// headings and are skipped by the cursor.
type courseRow struct {
	isModule bool
	title    string
	lesson   contract.LessonView
	done     int
	total    int
}

type courseKeys struct {
	Up, Down, Open, Toggle, Back key.Binding
}

var courseKeyMap = courseKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "read")),
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
	Back:   key.NewBinding(key.WithKeys("left", "h")),
}

// courseView shows one course's modules and lessons with completion marks.
type courseView struct {
	state    *SharedState
	courseID string
	detail   *contract.CourseDetailResponse
	rows     []courseRow
	cursor   int
	err      error
}

func newCourseView(state *SharedState, courseID string) *courseView {
	return &courseView{state: state, courseID: courseID, cursor: -1}
}

func (v *courseView) ID() ViewID { return ViewCourse }

func (v *courseView) Title() string {
	if v.detail != nil {
		return v.detail.Course.Title
	}
	return v.courseID
}

func (v *courseView) ShortHelp() []key.Binding {
	return []key.Binding{courseKeyMap.Open, courseKeyMap.Toggle}
}

func (v *courseView) Init() tea.Cmd {
	v.load()
	return nil
}

func (v *courseView) load() {
	detail, err := v.state.App.Progress.CourseDetail(v.state.Context(), v.courseID)
	if err != nil {
		v.err = err
		return
	}
	v.err = nil
	v.detail = detail
	v.rows = v.rows[:0]
	for _, m := range detail.Modules {
		v.rows = append(v.rows, courseRow{isModule: true, title: m.Title, done: m.Completed, total: m.Total})
		for _, l := range m.Lessons {
			v.rows = append(v.rows, courseRow{title: l.Title, lesson: l})
		}
	}
	if v.cursor < 0 || v.cursor >= len(v.rows) || v.rows[v.cursor].isModule {
		v.cursor = v.nextLesson(-1, 1)
	}
}

// nextLesson returns the first lesson row after from in direction dir, or
// from itself when there is none.
func (v *courseView) nextLesson(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(v.rows); i += dir {
		if !v.rows[i].isModule {
			return i
		}
	}
	return from
}

func (v *courseView) selected() (contract.LessonView, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) || v.rows[v.cursor].isModule {
		return contract.LessonView{}, false
	}
	return v.rows[v.cursor].lesson, true
}

func (v *courseView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.load()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, courseKeyMap.Up):
			v.cursor = v.nextLesson(v.cursor, -1)
		case key.Matches(msg, courseKeyMap.Down):
			v.cursor = v.nextLesson(v.cursor, 1)
		case key.Matches(msg, courseKeyMap.Toggle):
			if l, ok := v.selected(); ok {
				return v, toggleLesson(v.state, v.courseID, l.ID)
			}
		case key.Matches(msg, courseKeyMap.Back):
			return v, popView()
		case key.Matches(msg, courseKeyMap.Open):
			if l, ok := v.selected(); ok {
				return v, pushView(newLessonView(v.state, v.courseID, l.ID))
			}
		}
	}
	return v, nil
}

func (v *courseView) View() string {
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}
	if v.detail == nil {
		return formatter.Dim("Loading…")
	}

	var b strings.Builder
	c := &v.detail.Course
	p := v.detail.Progress
	fmt.Fprintf(&b, "%s %s  %s\n", c.Icon, formatter.Bold(c.Title), formatter.LevelBadge(c.Level))
	fmt.Fprintf(&b, "%s  %s\n\n", formatter.RenderProgress(p.Percent, 20),
		formatter.Dim(fmt.Sprintf("%d/%d lessons", p.Completed, p.Total)))

	for i, r := range v.rows {
		if r.isModule {
			fmt.Fprintf(&b, "%s %s\n", formatter.StyleHeader.Render(r.title),
				formatter.Dim(fmt.Sprintf("%d/%d", r.done, r.total)))
			continue
		}
		cursor := "  "
		title := r.title
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
			title = formatter.Bold(title)
		} else if r.lesson.Completed {
			title = formatter.Dim(title)
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n", cursor, formatter.CompletionMark(r.lesson.Completed), title,
			formatter.Dim(fmt.Sprintf("%s · %s", formatter.FormatMinutes(r.lesson.DurationMin), r.lesson.Type)))
	}
	return strings.TrimRight(b.String(), "\n")
}
