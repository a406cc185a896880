package template

import (
	"strings"

	"github.com/randalmurphal/figkit/parser"
)

// chunkParser recognizes a whole template as a sequence of chunks.
//
//	template := (variable | literal)*
//	variable := "{{" name "}}"
//	name     := avoid("}}") | ""
//	literal  := avoid("{{")
var chunkParser = parser.Many[Chunk](parser.OneOf[Chunk](
	parser.Map(
		parser.Delimited[parser.Span, parser.Span, parser.Span](
			parser.Literal(openDelim),
			parser.OneOf[parser.Span](parser.Avoid(closeDelim), parser.Literal("")),
			parser.Literal(closeDelim),
		),
		func(s parser.Span) Chunk { return Chunk{Kind: Variable, Span: s} },
	),
	parser.Map(
		parser.Avoid(openDelim),
		func(s parser.Span) Chunk { return Chunk{Kind: Literal, Span: s} },
	),
))

// CompileWithParser compiles source using the combinator grammar in package
// parser instead of the hand-written scanner. It accepts the same language,
// produces the same chunks and reports the same errors as Compile.
func CompileWithParser(source string) (*Template, error) {
	chunks, rest, err := parser.Parse[[]Chunk](chunkParser, source)
	if err != nil {
		return nil, compileError(0, err)
	}
	if rest != "" {
		pos := len(source) - len(rest)
		if strings.HasPrefix(rest, openDelim) {
			return nil, compileError(pos, ErrUnmatchedVariable)
		}
		return nil, compileError(pos, ErrLiteralCanNotStartWithTwoBraces)
	}
	return &Template{source: source, chunks: chunks}, nil
}
