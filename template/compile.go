package template

import (
	"strings"

	"github.com/randalmurphal/figkit/parser"
)

// Compile scans source once and returns the compiled template.
//
// At each position a {{ lookahead starts a variable, which runs to the next
// }}; anything else starts a literal, which runs to the next {{ or the end of
// the source. The first error aborts compilation and no Template is returned.
// An empty source compiles to a template with no chunks.
func Compile(source string) (*Template, error) {
	var chunks []Chunk

	pos := 0
	for pos < len(source) {
		var (
			chunk Chunk
			err   error
		)
		if strings.HasPrefix(source[pos:], openDelim) {
			chunk, err = scanVariable(source, pos)
		} else {
			chunk, err = scanLiteral(source, pos)
		}
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
		pos = chunk.Extent().End()
	}

	return &Template{source: source, chunks: chunks}, nil
}

// MustCompile is like Compile but panics if the source does not compile.
func MustCompile(source string) *Template {
	t, err := Compile(source)
	if err != nil {
		panic("template.MustCompile: " + err.Error())
	}
	return t
}

// scanVariable reads the variable whose {{ starts at pos.
func scanVariable(source string, pos int) (Chunk, error) {
	start := pos + len(openDelim)
	n := strings.Index(source[start:], closeDelim)
	if n < 0 {
		return Chunk{}, compileError(pos, ErrUnmatchedVariable)
	}
	return Chunk{Kind: Variable, Span: parser.NewSpan(start, n)}, nil
}

// scanLiteral reads literal text from pos up to the next {{ or the end.
func scanLiteral(source string, pos int) (Chunk, error) {
	n := strings.Index(source[pos:], openDelim)
	if n < 0 {
		n = len(source) - pos
	}
	if n == 0 {
		return Chunk{}, compileError(pos, ErrLiteralCanNotStartWithTwoBraces)
	}
	return Chunk{Kind: Literal, Span: parser.NewSpan(pos, n)}, nil
}
