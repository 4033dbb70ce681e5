package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/learnhub/internal/service"
	"github.com/alexanderramin/learnhub/internal/storage"
)

// App holds references to the services used by CLI commands.
type App struct {
	Catalog  service.CatalogService
	Progress service.ProgressService
	Storage  storage.Describer

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Confirm asks a yes/no question. Nil uses a huh confirmation prompt.
	Confirm func(title, description string) (bool, error)

	// Setup runs once before any subcommand, after flags are parsed.
	// The entrypoint uses it to load config and wire the services above.
	Setup func(cmd *cobra.Command) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(title, description string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title, description)
	}
	return huhConfirm(title, description)
}

// NewRootCmd creates the top-level "learnhub" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "learnhub",
		Short:         "Browse courses and track lesson progress",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if app.Setup == nil {
				return nil
			}
			return app.Setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ~/.learnhub/config.yaml)")
	pf.String("backend", "", "storage backend: sqlite, file, redis or memory")
	pf.String("db", "", "SQLite database path")
	pf.String("catalog", "", "catalog YAML file (default: built-in catalog)")
	pf.String("log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newCoursesCmd(app),
		newCourseCmd(app),
		newLessonCmd(app),
		newToggleCmd(app),
		newDoneCmd(app),
		newUndoCmd(app),
		newProgressCmd(app),
		newProfileCmd(app),
		newResetCmd(app),
		newStorageCmd(app),
		newBrowseCmd(app),
	)

	return root
}
