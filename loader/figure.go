package loader

import (
	"fmt"

	"github.com/randalmurphal/figkit/figure"
)

// LoadFigure reads and validates the figure at path.
func LoadFigure(path string) (figure.Figure, error) {
	var f figure.Figure
	if err := DecodeFile(path, &f); err != nil {
		return figure.Figure{}, err
	}
	if err := f.Validate(); err != nil {
		return figure.Figure{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
