package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/shelf/internal/database/books"
	"github.com/mrlokans/shelf/internal/demo"
	"github.com/mrlokans/shelf/internal/tui"
)

// Store implementations
var _ tui.Store = (*books.Repository)(nil)

// SampleSource implementations
var _ tui.SampleSource = (*demo.Generator)(nil)
