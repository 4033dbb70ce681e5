package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a tree display. Level 0 items are roots.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Done   bool
	Mark   bool   // show a completion mark before the title
	Detail string // right-aligned badge; empty for none
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders items as an indented tree using box-drawing
// connectors. Marked items get ✔ or ○; completed titles are dimmed.
// Detail badges are aligned to the widest line.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	widest := 0
	for i, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		if item.Mark {
			if item.Done {
				title = CompletionMark(true) + " " + Dim(title)
			} else {
				title = CompletionMark(false) + " " + title
			}
		} else if item.Level == 0 {
			title = Bold(title)
		}

		contents[i] = prefix + title
		widest = max(widest, lipgloss.Width(contents[i]))
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(contents[i])
		if item.Detail != "" {
			pad := widest - lipgloss.Width(contents[i])
			b.WriteString(strings.Repeat(" ", pad) + "  " + StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
