package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <isbn>",
		Aliases: []string{"rm"},
		Short:   "Delete a book by ISBN",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.Database()
			if err != nil {
				return err
			}

			isbn := args[0]
			if err := db.Books().Delete(cmd.Context(), isbn); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", isbn)
			return nil
		},
	}
}
