package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mrlokans/shelf/internal/catalog"
	"github.com/mrlokans/shelf/internal/entities"
)

var listHeaders = []string{"TITLE", "AUTHOR", "ISBN", "GENRE", "YEAR"}

func NewListCommand(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List books, optionally filtered",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.Database()
			if err != nil {
				return err
			}

			all, err := db.Books().ListAll(cmd.Context())
			if err != nil {
				return err
			}
			rows := catalog.Filter(all, search)

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No books found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(rows))
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d books\n", len(rows), len(all))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show books with a column containing this text (case-insensitive)")
	return cmd
}

func renderTable(rows []entities.Book) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(listHeaders...)
	for _, b := range rows {
		t.Row(b.Fields()...)
	}
	return t.Render()
}
