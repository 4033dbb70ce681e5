package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/learnhub/internal/cli/formatter"
)

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "toggle <course-id> <lesson-id>",
		Short:             "Flip a lesson between completed and not completed",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeCourseLesson(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Progress.Toggle(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLessonState(state))
			return nil
		},
	}
}

func newDoneCmd(app *App) *cobra.Command {
	return newSetCompletedCmd(app, "done", true, "Mark a lesson completed")
}

func newUndoCmd(app *App) *cobra.Command {
	return newSetCompletedCmd(app, "undo", false, "Mark a lesson not completed")
}

func newSetCompletedCmd(app *App, name string, done bool, short string) *cobra.Command {
	return &cobra.Command{
		Use:               name + " <course-id> <lesson-id>",
		Short:             short,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeCourseLesson(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Progress.SetCompleted(cmd.Context(), args[0], args[1], done)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLessonState(state))
			return nil
		},
	}
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "progress",
		Aliases: []string{"home"},
		Short:   "Show overall and per-course progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Progress.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
			return nil
		},
	}
}

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your learning summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Progress.Profile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(resp))
			return nil
		},
	}
}

var errResetNeedsConfirmation = errors.New("reset clears all progress; pass --yes to confirm in a non-interactive session")

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all lesson progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if !yes {
				if !app.interactive() {
					return errResetNeedsConfirmation
				}
				profile, err := app.Progress.Profile(ctx)
				if err != nil {
					return err
				}
				ok, err := app.confirm(
					"Reset all progress?",
					fmt.Sprintf("%d completed lessons will be cleared. This cannot be undone.", profile.LessonsCompleted),
				)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, formatter.Dim("Reset cancelled."))
					return nil
				}
			}
			if err := app.Progress.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.StyleGreen.Render("Progress reset."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
