package figure

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the shape of a figure.
type Kind string

// Figure kinds.
const (
	KindOpen     Kind = "open"
	KindClosed   Kind = "closed"
	KindComposed Kind = "compose"
)

// Sentinel errors for figure validation.
var (
	// ErrUnknownKind is returned for a figure with an unrecognized kind.
	ErrUnknownKind = errors.New("unknown figure kind")

	// ErrInvalidFigure is returned when a figure's fields do not match its kind.
	ErrInvalidFigure = errors.New("invalid figure")
)

// Figure is an open polyline, a closed polygon or a composition of figures.
// Points is used by open and closed figures, Figures by compositions.
type Figure struct {
	Kind    Kind     `json:"kind" yaml:"kind" toml:"kind"`
	Points  []Point  `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`
	Figures []Figure `json:"figures,omitempty" yaml:"figures,omitempty" toml:"figures,omitempty"`
}

// Open returns a polyline through points.
func Open(points ...Point) Figure {
	return Figure{Kind: KindOpen, Points: points}
}

// Closed returns a polygon through points, closed back to the first.
func Closed(points ...Point) Figure {
	return Figure{Kind: KindClosed, Points: points}
}

// Compose returns a figure made of figures, drawn in order.
func Compose(figures ...Figure) Figure {
	return Figure{Kind: KindComposed, Figures: figures}
}

// Validate checks the figure and all nested figures.
func (f Figure) Validate() error {
	switch f.Kind {
	case KindOpen, KindClosed:
		if len(f.Figures) > 0 {
			return fmt.Errorf("%w: %s figure cannot contain figures", ErrInvalidFigure, f.Kind)
		}
	case KindComposed:
		if len(f.Points) > 0 {
			return fmt.Errorf("%w: compose figure cannot contain points", ErrInvalidFigure)
		}
		for i, child := range f.Figures {
			if err := child.Validate(); err != nil {
				return fmt.Errorf("figures[%d]: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
	return nil
}

// Walk calls fn for every open or closed figure, depth first in drawing order.
func (f Figure) Walk(fn func(Figure)) {
	if f.Kind == KindComposed {
		for _, child := range f.Figures {
			child.Walk(fn)
		}
		return
	}
	fn(f)
}

// Bounds returns the smallest rectangle holding every point, as its
// lower-left and upper-right corners. ok is false when there are no points.
func (f Figure) Bounds() (lo, hi Point, ok bool) {
	f.Walk(func(g Figure) {
		for _, p := range g.Points {
			if !ok {
				lo, hi, ok = p, p, true
				continue
			}
			lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
			hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
		}
	})
	return lo, hi, ok
}

// String returns the display form, e.g. "[(open) [0 0] [1 1]]".
func (f Figure) String() string {
	var b strings.Builder
	b.WriteString("[(")
	b.WriteString(string(f.Kind))
	b.WriteString(")")
	if f.Kind == KindComposed {
		for _, child := range f.Figures {
			b.WriteString(" ")
			b.WriteString(child.String())
		}
	} else {
		for _, p := range f.Points {
			b.WriteString(" ")
			b.WriteString(p.String())
		}
	}
	b.WriteString("]")
	return b.String()
}
