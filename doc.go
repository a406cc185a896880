// Package figkit renders text templates with embedded vector figures.
//
// figkit is split into packages that can be imported on their own:
//
//   - parser: Generic parser combinators over strings with byte spans
//   - template: {{variable}} templates compiled to zero-copy chunks
//   - figure: Open polylines, closed polygons and compositions
//   - postscript: Figure encoding and documents embedding a figure
//   - loader: YAML, TOML and JSON inputs, frontmatter and file watching
//   - config: Render settings from files and FIGKIT_* variables
//
// # Quick Start
//
// Template rendering:
//
//	import "github.com/randalmurphal/figkit/template"
//	tmpl, _ := template.Compile("Hello {{name}}")
//	out, _ := tmpl.RenderString(template.Data{"name": "World"})
//
// Embedding a figure:
//
//	import "github.com/randalmurphal/figkit/postscript"
//	doc := postscript.NewDocument(tmpl).Embed(figure.Closed(figure.Pt(0, 0), figure.Pt(1, 1)))
//	doc.Render(os.Stdout)
//
// Parser combinators:
//
//	import "github.com/randalmurphal/figkit/parser"
//	token := parser.OneOf[parser.Span](parser.Avoid(" "), parser.Literal(" "))
//	spans, rest, _ := parser.Parse[[]parser.Span](parser.Many[parser.Span](token), "a b c")
//
// The figkit command wraps these packages; see cmd/figkit.
package figkit
