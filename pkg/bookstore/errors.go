package bookstore

import "errors"

var (
	ErrNotFound     = errors.New("book not found")
	ErrDuplicateID  = errors.New("book id already exists")
	ErrInsertFailed = errors.New("book insert failed")
)

// ValidationError reports a book payload that cannot be stored.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

var (
	ErrMissingName              = &ValidationError{Field: "name", Reason: "missing name"}
	ErrReadPageExceedsPageCount = &ValidationError{Field: "readPage", Reason: "readPage exceeds pageCount"}
	ErrNegativePages            = &ValidationError{Field: "pageCount", Reason: "pageCount and readPage must not be negative"}
)
