package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align controls horizontal placement of a table column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column is a table header with its alignment.
type Column struct {
	Title string
	Align Align
}

const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Widths are measured on visible text, so styled cells line up.
func RenderTable(columns []Column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = lipgloss.Width(c.Title)
	}
	for _, row := range rows {
		for i := 0; i < len(columns) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	header := make([]string, len(columns))
	rule := make([]string, len(columns))
	for i, c := range columns {
		header[i] = StyleHeader.Render(c.Title)
		rule[i] = StyleDim.Render(strings.Repeat("─", widths[i]))
	}
	writeRow(&b, columns, widths, header)
	writeRow(&b, columns, widths, rule)
	for _, row := range rows {
		writeRow(&b, columns, widths, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, columns []Column, widths []int, cells []string) {
	last := len(columns) - 1
	for i := range columns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := max(widths[i]-lipgloss.Width(cell), 0)
		if columns[i].Align == AlignRight {
			b.WriteString(strings.Repeat(" ", pad) + cell)
		} else {
			b.WriteString(cell)
			if i < last {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		if i < last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
