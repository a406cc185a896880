// Package template compiles {{variable}} templates once and renders them
// many times against string data.
//
// # Syntax
//
// Anything outside double braces is literal text. A variable is the text
// between {{ and }}:
//
//	Hello, {{subject}}!
//
// There are no control structures, filters or nested templates. Variable
// names are taken verbatim, including any surrounding whitespace.
//
// # Compiling
//
// Compile scans the source once and records each chunk as an offset and
// length into the source; no text is copied:
//
//	tmpl, err := template.Compile("{{greeting}}, {{subject}}!")
//	if errors.Is(err, template.ErrUnmatchedVariable) {
//	    // a {{ was never closed
//	}
//
// # Rendering
//
// Render writes literal chunks through and substitutes variables from Data.
// A variable with no entry in Data is written back unchanged, braces
// included, so missing keys never fail a render:
//
//	err := tmpl.Render(os.Stdout, template.Data{"greeting": "Hello"})
//	// Hello, {{subject}}!
//
// Substituted values are written verbatim and never scanned for further
// placeholders. A compiled Template is immutable and safe for concurrent
// Render calls.
//
// # Engine
//
// Engine keeps compiled templates by name, which lets long-running callers
// swap in a recompiled template while others keep rendering:
//
//	engine := template.NewEngine()
//	_ = engine.Add("page", "%!PS\n{{figure}}\nshowpage\n")
//	out, _ := engine.RenderString("page", template.Data{"figure": "..."})
package template
