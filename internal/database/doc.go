// Package database provides the data access layer for the catalog.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and schema creation
//	└── books/           # Book insert, list and delete operations
//
// # Usage
//
//	db, err := database.NewDatabase("./library.db", database.WithLogger(logger))
//	if err != nil {
//		// errors.Is(err, books.ErrStorageUnavailable)
//	}
//	defer db.Close()
//
//	repo := db.Books()
//	err = repo.Insert(ctx, &entities.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "1234567890"})
//
// The books table is created with CREATE TABLE IF NOT EXISTS semantics by
// gorm's AutoMigrate, so opening an existing file is safe.
package database
