// Package parser is a small parser-combinator toolkit for matching substrings
// of an in-memory string in a single forward pass.
//
// Core types:
//   - Span: a half-open byte range into the parsed source (no copy of the text)
//   - Parser: anything that consumes from a position and produces a value
//   - Limit: a finite (At) or unbounded (Infinity) repetition bound
//   - Error: a typed failure carrying the offset where matching stopped
//
// Every parser receives the absolute offset of the remaining input so the
// spans it produces point into the original source:
//
//	span, rest, err := parser.Parse(parser.Literal("{{"), "{{subject}}")
//	// span: 0..2, rest: "subject}}"
//
// Primitives:
//
//	parser.Literal("{{")                 // exact prefix match
//	parser.Any(unicode.IsLetter)         // one rune satisfying a predicate
//	parser.Avoid("{{")                   // everything up to a marker
//
// Combinators wrap other parsers:
//
//	parser.Map(p, func(s parser.Span) int { return s.End() })
//	parser.OneOf(parser.Literal("a"), parser.Literal("b"))
//	parser.Between(2, 4, parser.Any(unicode.IsLetter))
//	parser.AtLeast(1, p)
//	parser.Many(p)
//	parser.Sequence2(parser.Literal("-"), parser.Any(unicode.IsDigit))
//
// All parsers are pure functions of (offset, input); they hold no mutable
// state and are safe for concurrent use.
package parser
