package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying why a parser failed.
var (
	// ErrExpectedLiteral is returned when the input does not start with the expected text.
	ErrExpectedLiteral = errors.New("expected literal")

	// ErrUnexpectedCharacter is returned when a predicate rejects the next character.
	ErrUnexpectedCharacter = errors.New("unexpected character")

	// ErrUnexpectedEOF is returned when a parser needs input but none is left.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrExpectedOneOfToParse is returned when no alternative of OneOf matched.
	ErrExpectedOneOfToParse = errors.New("expected one of the alternatives to parse")

	// ErrExpectedToAvoid is returned when Avoid finds its marker before any text.
	ErrExpectedToAvoid = errors.New("expected text before marker")
)

// Error is a parse failure at a position in the input.
type Error struct {
	Err    error  // One of the sentinel errors above
	Offset int    // Absolute offset where the failing parser started
	Text   string // Expected literal or avoided marker, when relevant
	Char   rune   // Rejected character for ErrUnexpectedCharacter
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrExpectedLiteral), errors.Is(e.Err, ErrExpectedToAvoid):
		return fmt.Sprintf("offset %d: %v %q", e.Offset, e.Err, e.Text)
	case errors.Is(e.Err, ErrUnexpectedCharacter):
		return fmt.Sprintf("offset %d: %v %q", e.Offset, e.Err, e.Char)
	default:
		return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
	}
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(err error, offset int) *Error {
	return &Error{Err: err, Offset: offset}
}
