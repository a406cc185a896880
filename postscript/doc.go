// Package postscript serializes figures into a PostScript-like bracket
// notation and embeds them in templates.
//
// Encoding nests every figure and point list in brackets:
//
//	postscript.EncodeToString(figure.Open(figure.Pt(1, 2), figure.Pt(3, 4)))
//	// [(open)[[1 2][3 4]]]
//
// A Document pairs a compiled template with a figure. Rendering encodes the
// figure and substitutes it for the {{figure}} variable:
//
//	doc := postscript.NewDocument(template.MustCompile("%!PS\n{{figure}}\nshowpage\n"))
//	doc.Embed(frame)
//	err := doc.Render(os.Stdout)
package postscript
