package xmlpick

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChunkSize = errors.New("chunk size must be a positive integer")
	ErrInvalidPath      = errors.New("path must contain at least one tag name")
	ErrNilCallback      = errors.New("callback is required")
	ErrNilSource        = errors.New("source is required")
)

// ErrMalformedInput is returned when the tokenizer rejects the input.
// LineNumber is the 1-based line where the problem was detected.
type ErrMalformedInput struct {
	Err        error
	LineNumber int
}

func (e *ErrMalformedInput) Error() string {
	return fmt.Sprintf("malformed input: %s at line %d", e.Err, e.LineNumber)
}

func (e *ErrMalformedInput) Unwrap() error {
	return e.Err
}
