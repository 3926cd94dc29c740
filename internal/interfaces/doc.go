// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - Store: insert, list and delete books (internal/tui/model.go),
//     implemented by books.Repository
//
// ## Sample Data Interfaces
//
//   - SampleSource: generate sample books (internal/tui/model.go),
//     implemented by demo.Generator
//
// # Adding a New Front End
//
// A new front end should depend on tui.Store (or a narrower interface of
// its own) rather than on *gorm.DB, and add a compile-time check to
// checks.go for every concrete type it accepts.
package interfaces
