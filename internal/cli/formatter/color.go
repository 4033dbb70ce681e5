package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/learnhub/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LevelBadge returns a colored difficulty label.
func LevelBadge(level domain.CourseLevel) string {
	switch level {
	case domain.LevelBeginner:
		return StyleGreen.Render("Beginner")
	case domain.LevelIntermediate:
		return StyleYellow.Render("Intermediate")
	case domain.LevelAdvanced:
		return StyleRed.Render("Advanced")
	default:
		return StyleDim.Render(string(level))
	}
}

// LessonTypeBadge returns a short colored marker for the lesson format.
func LessonTypeBadge(t domain.LessonType) string {
	switch t {
	case domain.LessonVideo:
		return StyleBlue.Render("▶ video")
	case domain.LessonArticle:
		return StyleFg.Render("≡ article")
	case domain.LessonExercise:
		return StylePurple.Render("✎ exercise")
	case domain.LessonQuiz:
		return StyleYellow.Render("? quiz")
	default:
		return StyleDim.Render(string(t))
	}
}

// CompletionMark renders ✔ for completed lessons and ○ otherwise.
func CompletionMark(done bool) string {
	if done {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("○")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
