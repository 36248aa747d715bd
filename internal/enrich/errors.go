package enrich

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("ai unavailable")
	ErrGeneration   = errors.New("ai generation failed")
)
