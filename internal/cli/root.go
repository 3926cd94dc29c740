package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/shelf/internal/config"
)

// NewRootCommand builds the "shelf" command tree. Running it without a
// subcommand opens the terminal UI.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "shelf",
		Short: "Manage a local catalog of books",
		Long: `shelf keeps a small catalog of book records in a local SQLite file.

Run without arguments to open the interactive catalog. Subcommands add,
list, delete and seed records directly.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
		},
	}

	root.PersistentFlags().StringVar(&app.Config.Database.Path, "db", app.Config.Database.Path, "Path to the catalog database file")

	ui := NewUICommand(app)
	root.RunE = ui.RunE

	root.AddCommand(
		ui,
		NewAddCommand(app),
		NewListCommand(app),
		NewDeleteCommand(app),
		NewSeedCommand(app),
	)
	return root
}

// Execute runs the command tree against args.
func Execute(cfg *config.Config, version string, args []string) error {
	app := NewApp(cfg, version)
	defer app.Close()

	root := NewRootCommand(app)
	root.SetArgs(args)
	return root.Execute()
}
