package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/learnhub/internal/catalog"
	"github.com/alexanderramin/learnhub/internal/cli/formatter"
	"github.com/alexanderramin/learnhub/internal/contract"
)

type courseListKeys struct {
	Up, Down, Open, NextCategory, PrevCategory key.Binding
}

var courseListKeyMap = courseListKeys{
	Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	NextCategory: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "category")),
	PrevCategory: key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
}

// courseListView is the browser home: quick stats, a category filter and
// one row per course.
type courseListView struct {
	state       *SharedState
	categories  []string
	categoryIdx int
	stats       contract.QuickStats
	rows        []contract.CourseProgressView
	cursor      int
	err         error
}

func newCourseListView(state *SharedState) *courseListView {
	return &courseListView{state: state}
}

func (v *courseListView) ID() ViewID    { return ViewCourseList }
func (v *courseListView) Title() string { return "" }

func (v *courseListView) ShortHelp() []key.Binding {
	return []key.Binding{courseListKeyMap.Open, courseListKeyMap.NextCategory}
}

func (v *courseListView) Init() tea.Cmd {
	v.load()
	return nil
}

func (v *courseListView) category() string {
	if len(v.categories) == 0 {
		return catalog.AllCategories
	}
	return v.categories[v.categoryIdx]
}

func (v *courseListView) load() {
	ctx := v.state.Context()
	app := v.state.App

	if v.categories == nil {
		cats, err := app.Catalog.Categories(ctx)
		if err != nil {
			v.err = err
			return
		}
		v.categories = append([]string{catalog.AllCategories}, cats...)
	}

	courses, err := app.Catalog.ListCourses(ctx, v.category())
	if err != nil {
		v.err = err
		return
	}
	dash, err := app.Progress.Dashboard(ctx)
	if err != nil {
		v.err = err
		return
	}
	inCategory := make(map[string]bool, len(courses))
	for _, c := range courses {
		inCategory[c.ID] = true
	}

	v.err = nil
	v.stats = dash.Stats
	v.rows = v.rows[:0]
	for _, row := range dash.Courses {
		if inCategory[row.CourseID] {
			v.rows = append(v.rows, row)
		}
	}
	v.cursor = min(v.cursor, max(len(v.rows)-1, 0))
}

func (v *courseListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.load()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, courseListKeyMap.Up):
			if v.cursor > 0 {
				v.cursor--
			}
		case key.Matches(msg, courseListKeyMap.Down):
			if v.cursor < len(v.rows)-1 {
				v.cursor++
			}
		case key.Matches(msg, courseListKeyMap.NextCategory):
			if n := len(v.categories); n > 0 {
				v.categoryIdx = (v.categoryIdx + 1) % n
				v.cursor = 0
				v.load()
			}
		case key.Matches(msg, courseListKeyMap.PrevCategory):
			if n := len(v.categories); n > 0 {
				v.categoryIdx = (v.categoryIdx - 1 + n) % n
				v.cursor = 0
				v.load()
			}
		case key.Matches(msg, courseListKeyMap.Open):
			if v.cursor < len(v.rows) {
				return v, pushView(newCourseView(v.state, v.rows[v.cursor].CourseID))
			}
		}
	}
	return v, nil
}

func (v *courseListView) View() string {
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}

	var b strings.Builder
	s := v.stats
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s  %s\n\n",
		formatter.Bold(fmt.Sprint(s.Courses)), formatter.Dim("courses"),
		formatter.Bold(fmt.Sprint(s.Lessons)), formatter.Dim("lessons"),
		formatter.Bold(fmt.Sprint(s.ContentHours)), formatter.Dim("hours"),
		formatter.RenderProgress(s.OverallPercent, 16))

	tabs := make([]string, len(v.categories))
	for i, c := range v.categories {
		if i == v.categoryIdx {
			tabs[i] = formatter.StyleHeader.Render("[" + c + "]")
		} else {
			tabs[i] = formatter.Dim(" " + c + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	if len(v.rows) == 0 {
		b.WriteString(formatter.Dim("  No courses in this category."))
		return b.String()
	}

	width := 0
	for _, r := range v.rows {
		width = max(width, len([]rune(r.Title)))
	}
	for i, r := range v.rows {
		cursor := "  "
		title := r.Title
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
			title = formatter.Bold(title)
		}
		pad := strings.Repeat(" ", width-len([]rune(r.Title)))
		fmt.Fprintf(&b, "%s%s %s%s  %s  %s\n", cursor, r.Icon, title, pad,
			formatter.RenderProgress(r.Percent, 12),
			formatter.Dim(fmt.Sprintf("%d/%d", r.Completed, r.Total)))
	}
	return strings.TrimRight(b.String(), "\n")
}
