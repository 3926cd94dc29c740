package books

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey is returned when a record with the same ISBN already exists.
	ErrDuplicateKey = errors.New("book with this isbn already exists")
	// ErrNotFound is returned when no record matches the given ISBN.
	ErrNotFound = errors.New("book not found")
	// ErrInvalidRecord is returned when title or author is empty.
	ErrInvalidRecord = errors.New("book title and author are required")
	// ErrStorageUnavailable is returned when the catalog file cannot be opened or prepared.
	ErrStorageUnavailable = errors.New("catalog storage unavailable")
)

// Outcome is the tagged result of a store operation.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeDuplicateKey
	OutcomeNotFound
	OutcomeInvalidRecord
	OutcomeStorageUnavailable
	OutcomeStorageError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeDuplicateKey:
		return "duplicate isbn"
	case OutcomeNotFound:
		return "not found"
	case OutcomeInvalidRecord:
		return "invalid record"
	case OutcomeStorageUnavailable:
		return "storage unavailable"
	default:
		return "storage error"
	}
}

// Classify maps an error returned by this package to its Outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrDuplicateKey):
		return OutcomeDuplicateKey
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrInvalidRecord):
		return OutcomeInvalidRecord
	case errors.Is(err, ErrStorageUnavailable):
		return OutcomeStorageUnavailable
	default:
		return OutcomeStorageError
	}
}

// Succeeded collapses an operation result to a plain success flag.
func Succeeded(err error) bool {
	return Classify(err) == OutcomeOK
}

// isDuplicateKey reports whether err is a primary key or unique constraint
// violation, either raw from the sqlite driver or translated by gorm.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return true
		}
	}
	return false
}
