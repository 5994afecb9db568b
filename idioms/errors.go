package idioms

import "errors"

// Sentinel errors returned by catalogue and runner operations.
var (
	// ErrSnippetNotFound is returned when a snippet name is not registered.
	ErrSnippetNotFound = errors.New("idioms: snippet not found")

	// ErrEmptySnippetName is returned by [Catalog.Register] for a blank name.
	ErrEmptySnippetName = errors.New("idioms: snippet name must not be empty")

	// ErrNilSnippet is returned by [Catalog.Register] when Run is nil.
	ErrNilSnippet = errors.New("idioms: snippet run func must not be nil")

	// ErrDuplicateSnippet is returned by [Catalog.Register] when the name is
	// already taken.
	ErrDuplicateSnippet = errors.New("idioms: snippet already registered")

	// ErrUnknownFormat is returned by [ParseFormat] for anything other than
	// "text" or "json".
	ErrUnknownFormat = errors.New("idioms: unknown output format")

	// ErrUnexpectedType is returned when a type assertion inside a snippet
	// does not hold.
	ErrUnexpectedType = errors.New("idioms: unexpected dynamic type")
)
