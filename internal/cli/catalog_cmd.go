package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/learnhub/internal/catalog"
	"github.com/alexanderramin/learnhub/internal/cli/formatter"
	"github.com/alexanderramin/learnhub/internal/contract"
)

func newCoursesCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "courses",
		Aliases: []string{"ls"},
		Short:   "List courses with your progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if category != "" && category != catalog.AllCategories {
				if err := checkCategory(cmd, app, category); err != nil {
					return err
				}
			}
			courses, err := app.Catalog.ListCourses(ctx, category)
			if err != nil {
				return err
			}
			dash, err := app.Progress.Dashboard(ctx)
			if err != nil {
				return err
			}
			byID := make(map[string]contract.CourseProgressView, len(dash.Courses))
			for _, v := range dash.Courses {
				byID[v.CourseID] = v
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseList(courses, byID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only show courses in this category")
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		if app.Catalog == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		cats, _ := app.Catalog.Categories(cmd.Context())
		return append([]string{catalog.AllCategories}, cats...), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func checkCategory(cmd *cobra.Command, app *App, category string) error {
	cats, err := app.Catalog.Categories(cmd.Context())
	if err != nil {
		return err
	}
	for _, c := range cats {
		if c == category {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q (have: %s)", category, strings.Join(cats, ", "))
}

func newCourseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "course <course-id>",
		Short:             "Show a course with its modules and lessons",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCourseLesson(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Progress.CourseDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseDetail(resp))
			return nil
		},
	}
}

func newLessonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "lesson <course-id> <lesson-id>",
		Short:             "Read a lesson",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeCourseLesson(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			detail, err := app.Catalog.GetLesson(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			state, err := app.Progress.LessonStatus(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLesson(detail, state.Completed))
			return nil
		},
	}
}

// completeCourseLesson completes a course id first and a lesson id of
// that course second.
func completeCourseLesson(app *App) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if app.Catalog == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		ctx := cmd.Context()
		switch len(args) {
		case 0:
			courses, _ := app.Catalog.ListCourses(ctx, "")
			out := make([]string, 0, len(courses))
			for _, c := range courses {
				out = append(out, c.ID+"\t"+c.Title)
			}
			return out, cobra.ShellCompDirectiveNoFileComp
		case 1:
			course, err := app.Catalog.GetCourse(ctx, args[0])
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var out []string
			for _, m := range course.Modules {
				for _, l := range m.Lessons {
					out = append(out, l.ID+"\t"+l.Title)
				}
			}
			return out, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}
