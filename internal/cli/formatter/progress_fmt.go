package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/learnhub/internal/contract"
)

// FormatDashboard renders quick stats followed by one bar per course.
func FormatDashboard(resp *contract.DashboardResponse) string {
	s := resp.Stats
	stats := strings.Join([]string{
		StatLine("Courses", Bold(fmt.Sprint(s.Courses)), 10),
		StatLine("Lessons", Bold(fmt.Sprintf("%d/%d", s.LessonsCompleted, s.Lessons)), 10),
		StatLine("Hours", Bold(fmt.Sprint(s.ContentHours)), 10),
		StatLine("Overall", RenderProgress(s.OverallPercent, barWidth), 10),
	}, "\n")

	var b strings.Builder
	b.WriteString(RenderBox("Your progress", stats) + "\n\n")
	b.WriteString(FormatCourseProgress(resp.Courses))
	return b.String()
}

// FormatCourseProgress renders one aligned bar per course.
func FormatCourseProgress(courses []contract.CourseProgressView) string {
	widest := 0
	for _, c := range courses {
		widest = max(widest, lipgloss.Width(courseLabel(c)))
	}
	var b strings.Builder
	for _, c := range courses {
		label := courseLabel(c)
		pad := strings.Repeat(" ", widest-lipgloss.Width(label))
		fmt.Fprintf(&b, "%s%s  %s  %s\n", label, pad,
			RenderProgress(c.Percent, barWidth),
			Dim(fmt.Sprintf("%d/%d", c.Completed, c.Total)))
	}
	return b.String()
}

func courseLabel(c contract.CourseProgressView) string {
	return strings.TrimSpace(c.Icon + " " + c.Title)
}

// FormatProfile renders the learner summary.
func FormatProfile(resp *contract.ProfileResponse) string {
	lines := []string{
		StatLine("Lessons done", Bold(fmt.Sprint(resp.LessonsCompleted)), 16),
		StatLine("Courses", Bold(fmt.Sprint(resp.Courses)), 16),
		StatLine("Started", fmt.Sprint(resp.CoursesStarted), 16),
		StatLine("Finished", StyleGreen.Render(fmt.Sprint(resp.CoursesFinished)), 16),
		StatLine("Overall", RenderProgress(resp.OverallPercent, barWidth), 16),
	}
	return RenderBox("Profile", strings.Join(lines, "\n")) + "\n"
}

// FormatLessonState renders the one-line result of a completion change.
func FormatLessonState(state *contract.LessonState) string {
	var verb string
	switch {
	case !state.Changed && state.Completed:
		verb = Dim("already completed")
	case !state.Changed:
		verb = Dim("already not completed")
	case state.Completed:
		verb = StyleGreen.Render("completed")
	default:
		verb = StyleYellow.Render("marked not completed")
	}
	return fmt.Sprintf("%s %s/%s %s  %s %s\n",
		CompletionMark(state.Completed),
		state.CourseID, Bold(state.LessonID), verb,
		RenderProgress(state.CoursePercent, 10),
		Dim(fmt.Sprintf("%d/%d", state.CourseCompleted, state.CourseTotal)))
}
