// Package catalog holds view-side helpers over rows already loaded from the
// store. Nothing here queries the database.
package catalog

import (
	"strings"

	"github.com/mrlokans/shelf/internal/entities"
)

// Matches reports whether any column of b contains query, ignoring case.
// An empty query matches every book.
func Matches(b entities.Book, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range b.Fields() {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Filter returns the rows matching query, preserving their order.
func Filter(rows []entities.Book, query string) []entities.Book {
	if query == "" {
		return rows
	}
	out := make([]entities.Book, 0, len(rows))
	for _, b := range rows {
		if Matches(b, query) {
			out = append(out, b)
		}
	}
	return out
}
