package parser

import "fmt"

// Span is a half-open byte range [Offset, Offset+Length) into a source string.
// Spans never hold the text they denote; use Text to slice the owner on demand.
type Span struct {
	Offset int
	Length int
}

// NewSpan returns the span starting at offset covering length bytes.
func NewSpan(offset, length int) Span {
	return Span{Offset: offset, Length: length}
}

// End returns the offset one past the last byte of the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Length == 0
}

// Text returns the part of source denoted by the span.
// The span must lie within source.
func (s Span) Text(source string) string {
	return source[s.Offset:s.End()]
}

// Widen grows the span by before bytes on the left and after bytes on the right.
func (s Span) Widen(before, after int) Span {
	return Span{Offset: s.Offset - before, Length: s.Length + before + after}
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Offset, s.End())
}
