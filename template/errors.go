package template

import (
	"errors"
	"fmt"
)

// Sentinel errors for template operations.
var (
	// ErrUnmatchedVariable is returned when a {{ has no closing }}.
	ErrUnmatchedVariable = errors.New("unmatched variable")

	// ErrLiteralCanNotStartWithTwoBraces is returned when a literal scan would
	// produce an empty chunk because the position opens a variable.
	ErrLiteralCanNotStartWithTwoBraces = errors.New("literal can not start with two braces")

	// ErrVariable is returned when a required variable is missing.
	ErrVariable = errors.New("required variable missing")

	// ErrNotFound is returned when an Engine has no template with the given name.
	ErrNotFound = errors.New("template not found")
)

// Error wraps a compile failure with the position it was detected at.
type Error struct {
	Op     string // Operation that failed ("compile")
	Offset int    // Byte offset of the chunk that failed
	Err    error  // Underlying sentinel error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: offset %d: %v", e.Op, e.Offset, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

func compileError(offset int, err error) *Error {
	return &Error{Op: "compile", Offset: offset, Err: err}
}
