package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/learnhub/internal/cli/formatter"
)

func newStorageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "storage",
		Short: "Show where progress is saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Storage == nil {
				return errors.New("no storage backend configured")
			}
			info, err := app.Storage.Describe(cmd.Context())
			if err != nil {
				return fmt.Errorf("reading storage info: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStorageInfo(info))
			return nil
		},
	}
}
