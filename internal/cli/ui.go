package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrlokans/shelf/internal/demo"
	"github.com/mrlokans/shelf/internal/tui"
)

func NewUICommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive catalog (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.Database()
			if err != nil {
				return err
			}
			logger, err := app.Logger()
			if err != nil {
				return err
			}
			logger.Info("Starting catalog UI", zap.String("database", app.Config.Database.Path))

			return tui.Run(cmd.Context(), tui.Config{
				Store:       db.Books(),
				Samples:     demo.NewGenerator(),
				SampleCount: app.Config.Sample.Count,
				Logger:      logger,
			})
		},
	}
}
