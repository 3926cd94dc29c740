package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrlokans/shelf/internal/demo"
)

// SeedCommand inserts a batch of generated sample books.
type SeedCommand struct {
	app   *App
	count int
	gen   *demo.Generator
}

func NewSeedCommand(app *App) *cobra.Command {
	c := &SeedCommand{app: app}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add randomly generated sample books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd)
		},
	}
	cmd.Flags().IntVar(&c.count, "count", 0, "Number of books to generate (default SAMPLE_COUNT)")
	return cmd
}

func (c *SeedCommand) Run(cmd *cobra.Command) error {
	count := c.count
	if count <= 0 {
		count = c.app.Config.Sample.Count
	}
	gen := c.gen
	if gen == nil {
		gen = demo.NewGenerator()
	}

	db, err := c.app.Database()
	if err != nil {
		return err
	}
	logger, err := c.app.Logger()
	if err != nil {
		return err
	}

	batch := gen.Generate(count)
	if err := db.Books().InsertMany(cmd.Context(), batch); err != nil {
		return fmt.Errorf("failed to add sample books: %w", err)
	}
	logger.Info("Sample books added", zap.Int("count", len(batch)))

	fmt.Fprintf(cmd.OutOrStdout(), "Added %d sample books\n", len(batch))
	return nil
}
