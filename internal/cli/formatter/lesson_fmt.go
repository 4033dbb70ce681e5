package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/learnhub/internal/contract"
)

var codeStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorDim).
	PaddingLeft(1).
	Foreground(ColorBlue)

// FormatLesson renders a lesson page: meta line, content, key points and
// the code sample when present.
func FormatLesson(detail *contract.LessonDetail, done bool) string {
	l := &detail.Lesson
	var b strings.Builder

	b.WriteString(Header(l.Title) + "\n")
	status := StyleYellow.Render("not completed")
	if done {
		status = StyleGreen.Render("✔ completed")
	}
	meta := []string{
		Dim(detail.CourseTitle),
		Dim(detail.Module.Title),
		LessonTypeBadge(l.Type),
		FormatMinutes(l.DurationMin),
		status,
	}
	b.WriteString(strings.Join(meta, Dim(" · ")) + "\n\n")

	if l.Content != "" {
		b.WriteString(RenderContent(l.Content) + "\n")
	}

	if l.HasKeyPoints() {
		b.WriteString("\n" + Bold("Key points") + "\n")
		for _, p := range l.KeyPoints {
			b.WriteString("  " + StyleGreen.Render("•") + " " + p + "\n")
		}
	}

	if l.HasCode() {
		label := "Code"
		if l.CodeExample.Language != "" {
			label += " (" + l.CodeExample.Language + ")"
		}
		b.WriteString("\n" + Bold(label) + "\n")
		b.WriteString(codeStyle.Render(l.CodeExample.Code) + "\n")
	}
	return b.String()
}

// RenderContent styles lesson markdown line by line: headings become
// headers, **bold** lines are emphasised, list items get a bullet.
func RenderContent(md string) string {
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "## "):
			lines[i] = StyleYellowBold.Render(strings.TrimPrefix(trimmed, "## "))
		case strings.HasPrefix(trimmed, "# "):
			lines[i] = StyleHeader.Render(strings.TrimPrefix(trimmed, "# "))
		case strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") && len(trimmed) > 4:
			lines[i] = Bold(strings.Trim(trimmed, "*"))
		case strings.HasPrefix(trimmed, "- "):
			lines[i] = "  " + Dim("•") + " " + strings.TrimPrefix(trimmed, "- ")
		}
	}
	return strings.Join(lines, "\n")
}
