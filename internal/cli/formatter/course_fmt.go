package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/learnhub/internal/contract"
	"github.com/alexanderramin/learnhub/internal/domain"
)

const barWidth = 20

// FormatCourseList renders the catalog table. progress is keyed by course
// id; courses missing from it show an empty bar.
func FormatCourseList(courses []domain.Course, progress map[string]contract.CourseProgressView) string {
	if len(courses) == 0 {
		return Dim("No courses in this category.") + "\n"
	}

	columns := []Column{
		{Title: "ID"},
		{Title: "COURSE"},
		{Title: "LEVEL"},
		{Title: "LESSONS", Align: AlignRight},
		{Title: "HOURS", Align: AlignRight},
		{Title: "PROGRESS"},
	}
	rows := make([][]string, 0, len(courses))
	for i := range courses {
		c := &courses[i]
		p := progress[c.ID]
		rows = append(rows, []string{
			Dim(c.ID),
			strings.TrimSpace(c.Icon + " " + c.Title),
			LevelBadge(c.Level),
			strconv.Itoa(c.TotalLessons()),
			strconv.Itoa(c.DurationHours),
			RenderProgress(p.Percent, 10),
		})
	}
	return RenderTable(columns, rows)
}

// FormatCourseDetail renders a course page with its module tree.
func FormatCourseDetail(resp *contract.CourseDetailResponse) string {
	c := &resp.Course
	var b strings.Builder

	b.WriteString(Header(strings.TrimSpace(c.Icon + " " + c.Title)))
	b.WriteString("\n")
	meta := []string{
		LevelBadge(c.Level),
		StylePurple.Render(c.Category),
		fmt.Sprintf("%dh", c.DurationHours),
		FormatRating(c.Rating),
		FormatCount(c.EnrollmentCount) + " enrolled",
	}
	b.WriteString(strings.Join(meta, Dim(" · ")) + "\n")
	if c.Instructor != "" {
		b.WriteString(Dim("Instructor: ") + c.Instructor + "\n")
	}
	if c.Description != "" {
		b.WriteString("\n" + c.Description + "\n")
	}

	b.WriteString("\n" + RenderProgress(resp.Progress.Percent, barWidth))
	b.WriteString(Dim(fmt.Sprintf("  %d/%d lessons", resp.Progress.Completed, resp.Progress.Total)) + "\n")

	writeList(&b, "Skills", c.Skills)
	writeList(&b, "Prerequisites", c.Prerequisites)
	writeList(&b, "You will", c.Outcomes)

	b.WriteString("\n")
	b.WriteString(RenderTree(moduleTree(resp.Modules)))
	return b.String()
}

func moduleTree(modules []contract.ModuleView) []TreeItem {
	var items []TreeItem
	for _, m := range modules {
		items = append(items, TreeItem{
			Title:  m.Title,
			Detail: fmt.Sprintf("%d/%d", m.Completed, m.Total),
		})
		for i, l := range m.Lessons {
			items = append(items, TreeItem{
				Title:  fmt.Sprintf("%s  %s", Dim(l.ID), l.Title),
				Level:  1,
				IsLast: i == len(m.Lessons)-1,
				Mark:   true,
				Done:   l.Completed,
				Detail: fmt.Sprintf("%s %s", FormatMinutes(l.DurationMin), l.Type),
			})
		}
	}
	return items
}

func writeList(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	b.WriteString("\n" + Bold(label) + "\n")
	for _, v := range values {
		b.WriteString("  " + Dim("•") + " " + v + "\n")
	}
}
