package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/shelf/internal/entities"
)

// AddCommand inserts one book from flags.
type AddCommand struct {
	app  *App
	book entities.Book
}

func NewAddCommand(app *App) *cobra.Command {
	c := &AddCommand{app: app}
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a book to the catalog",
		Example: `  shelf add --title Dune --author "Frank Herbert" --isbn 1234567890 --genre Sci-Fi --year 1965`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&c.book.Title, "title", "", "Book title (required)")
	fs.StringVar(&c.book.Author, "author", "", "Book author (required)")
	fs.StringVar(&c.book.ISBN, "isbn", "", "ISBN, unique within the catalog (required)")
	fs.StringVar(&c.book.Genre, "genre", "", "Genre")
	fs.StringVar(&c.book.PublicationYear, "year", "", "Publication year")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("isbn")

	return cmd
}

func (c *AddCommand) Run(cmd *cobra.Command) error {
	db, err := c.app.Database()
	if err != nil {
		return err
	}

	book := c.book
	if err := db.Books().Insert(cmd.Context(), &book); err != nil {
		return fmt.Errorf("failed to add %q: %w", book.Title, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %q by %s (%s)\n", book.Title, book.Author, book.ISBN)
	return nil
}
