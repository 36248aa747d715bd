package archive

import "errors"

var (
	// ErrNotFound indicates the document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden indicates the document belongs to someone else.
	ErrForbidden = errors.New("forbidden")
)
