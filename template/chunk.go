package template

import "github.com/randalmurphal/figkit/parser"

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Kind classifies a chunk.
type Kind int

const (
	// Literal chunks are copied to the output unchanged.
	Literal Kind = iota
	// Variable chunks name a key to look up in Data.
	Variable
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Variable:
		return "variable"
	default:
		return "unknown"
	}
}

// Chunk is one piece of a compiled template.
//
// For a Literal the span covers the raw output text. For a Variable it
// covers only the name, excluding the {{ and }} delimiters.
type Chunk struct {
	Kind Kind
	Span parser.Span
}

// Extent returns the full source range the chunk was compiled from,
// including the delimiters of a variable.
func (c Chunk) Extent() parser.Span {
	if c.Kind == Variable {
		return c.Span.Widen(len(openDelim), len(closeDelim))
	}
	return c.Span
}
