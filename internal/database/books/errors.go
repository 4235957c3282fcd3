package books

import "errors"

// ErrBookNotFound is returned when an operation references an id that does
// not exist in the books table.
var ErrBookNotFound = errors.New("book not found")

// SchemaError signals that the books table itself is missing, i.e. the
// database was never migrated. It is surfaced with a migration hint instead
// of a generic failure.
type SchemaError struct {
	cause error
}

func (e *SchemaError) Error() string {
	return "books table does not exist: run the server once to migrate the schema"
}

func (e *SchemaError) Unwrap() error { return e.cause }

// PersistenceError wraps an unexpected store failure with an
// operation-specific user-facing message. The original cause is kept for
// logging and unwrapping but is never shown to clients outside development.
type PersistenceError struct {
	Message string
	cause   error
}

func (e *PersistenceError) Error() string { return e.Message }

func (e *PersistenceError) Unwrap() error { return e.cause }
