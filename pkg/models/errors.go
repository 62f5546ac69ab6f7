package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the model file does not exist.
	ErrNotFound = errors.New("model not found")

	// ErrUnsupportedFormat is returned for file extensions no loader handles.
	ErrUnsupportedFormat = errors.New("unsupported model format")

	// ErrMalformed is returned when a model line cannot be parsed.
	ErrMalformed = errors.New("malformed model")

	// ErrIndexRange is returned when a face references a missing vertex.
	ErrIndexRange = errors.New("face index out of range")
)

// ParseError records the line of a model file that failed to parse.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
