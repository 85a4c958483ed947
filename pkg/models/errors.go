package models

import (
	"errors"
	"fmt"
)

var (
	// ErrFileOpen is returned when a model file cannot be opened.
	ErrFileOpen = errors.New("cannot open model file")

	// ErrUnsupportedFormat is returned for file extensions no loader handles.
	ErrUnsupportedFormat = errors.New("unsupported model format")

	ErrMalformedVertex = errors.New("malformed vertex")
	ErrMalformedFace   = errors.New("malformed face")
	ErrIndexRange      = errors.New("vertex index out of range")
	ErrFaceArity       = errors.New("face arity differs from the first face")
)

// ParseError describes one line the OBJ loader could not use as written.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, trimmed
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
