// Package books provides database operations for the book catalog.
//
// Records are keyed by ISBN and never updated in place: callers insert,
// list and delete. Every error returned here can be passed to Classify to
// obtain a tagged Outcome, or to Succeeded for a plain success flag.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	err := repo.Insert(ctx, &entities.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "1234567890"})
package books

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/shelf/internal/entities"
)

// insertBatchSize keeps a single INSERT well under SQLite's bound-variable limit.
const insertBatchSize = 100

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert adds one book. A duplicate ISBN leaves the stored record untouched
// and returns ErrDuplicateKey.
func (r *Repository) Insert(ctx context.Context, book *entities.Book) error {
	if err := validate(book); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return translate("insert book", err)
	}
	return nil
}

// InsertMany adds all books in one transaction. If any record is rejected
// nothing is written.
func (r *Repository) InsertMany(ctx context.Context, batch []entities.Book) error {
	if len(batch) == 0 {
		return nil
	}
	for i := range batch {
		if err := validate(&batch[i]); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&batch, insertBatchSize).Error
	})
	if err != nil {
		return translate("insert books", err)
	}
	return nil
}

// ListAll returns every stored book in the table's native row order.
func (r *Repository) ListAll(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	if err := r.db.WithContext(ctx).Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Delete removes the book with the given ISBN. Deleting an absent ISBN
// returns ErrNotFound.
func (r *Repository) Delete(ctx context.Context, isbn string) error {
	result := r.db.WithContext(ctx).Where("isbn = ?", isbn).Delete(&entities.Book{})
	if result.Error != nil {
		return fmt.Errorf("delete book %s: %w", isbn, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete book %s: %w", isbn, ErrNotFound)
	}
	return nil
}

func validate(book *entities.Book) error {
	if book.Title == "" || book.Author == "" {
		return ErrInvalidRecord
	}
	return nil
}

func translate(op string, err error) error {
	if isDuplicateKey(err) {
		return fmt.Errorf("%s: %w", op, ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", op, err)
}
