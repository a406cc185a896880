// Package figure models plotter figures: open polylines, closed polygons and
// compositions of other figures.
//
//	square := figure.Closed(figure.Pt(200, 200), figure.Pt(800, 200), figure.Pt(800, 800), figure.Pt(200, 800))
//	frame := figure.Compose(figure.Open(figure.Pt(100, 100), figure.Pt(900, 100)), square)
//	fmt.Println(frame)
//	// [(compose) [(open) [100 100] [900 100]] [(closed) [200 200] ...]]
//
// Figures decode from YAML, TOML and JSON documents:
//
//	kind: compose
//	figures:
//	  - kind: open
//	    points: [[100, 100], [900, 100]]
package figure
