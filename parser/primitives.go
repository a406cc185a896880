package parser

import (
	"strings"
	"unicode/utf8"
)

// LiteralParser matches an exact string. See Literal.
type LiteralParser struct {
	text string
}

// Literal returns a parser that succeeds iff the input starts with text.
// Matching is byte exact and case sensitive. The produced span covers text.
func Literal(text string) LiteralParser {
	return LiteralParser{text: text}
}

// ParseAt implements Parser.
func (p LiteralParser) ParseAt(offset int, input string) (Span, string, error) {
	if !strings.HasPrefix(input, p.text) {
		return Span{}, input, &Error{Err: ErrExpectedLiteral, Offset: offset, Text: p.text}
	}
	n := len(p.text)
	return NewSpan(offset, n), input[n:], nil
}

// AnyParser matches a single rune accepted by a predicate. See Any.
type AnyParser struct {
	predicate func(rune) bool
}

// Any returns a parser that consumes one rune if predicate accepts it.
// The produced span covers the rune's UTF-8 encoding.
func Any(predicate func(rune) bool) AnyParser {
	return AnyParser{predicate: predicate}
}

// ParseAt implements Parser.
func (p AnyParser) ParseAt(offset int, input string) (Span, string, error) {
	r, size := utf8.DecodeRuneInString(input)
	if size == 0 {
		return Span{}, input, newError(ErrUnexpectedEOF, offset)
	}
	if !p.predicate(r) {
		return Span{}, input, &Error{Err: ErrUnexpectedCharacter, Offset: offset, Char: r}
	}
	return NewSpan(offset, size), input[size:], nil
}

// AvoidParser matches everything up to a marker. See Avoid.
type AvoidParser struct {
	marker string
}

// Avoid returns a parser that scans forward one rune at a time until marker
// starts the unscanned text or the input runs out.
//
// The produced span covers the scanned text and the remainder begins at the
// marker. At least one rune must be scanned: when the input starts with
// marker, or is empty, Avoid fails with ErrExpectedToAvoid.
func Avoid(marker string) AvoidParser {
	return AvoidParser{marker: marker}
}

// ParseAt implements Parser.
func (p AvoidParser) ParseAt(offset int, input string) (Span, string, error) {
	n := 0
	for n < len(input) && !strings.HasPrefix(input[n:], p.marker) {
		_, size := utf8.DecodeRuneInString(input[n:])
		n += size
	}
	if n == 0 {
		return Span{}, input, &Error{Err: ErrExpectedToAvoid, Offset: offset, Text: p.marker}
	}
	return NewSpan(offset, n), input[n:], nil
}
