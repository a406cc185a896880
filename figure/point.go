package figure

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Point is a coordinate pair in plotter units.
type Point struct {
	X int
	Y int
}

// Pt returns the point (x, y).
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns the point as "[x y]".
func (p Point) String() string {
	return fmt.Sprintf("[%d %d]", p.X, p.Y)
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

var errPointShape = errors.New("point must be a two-element [x, y] array")

func pointFromSlice(xy []int) (Point, error) {
	if len(xy) != 2 {
		return Point{}, errPointShape
	}
	return Point{X: xy[0], Y: xy[1]}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for [x, y] sequences.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var xy []int
	if err := value.Decode(&xy); err != nil {
		return fmt.Errorf("decode point: %w", err)
	}
	pt, err := pointFromSlice(xy)
	if err != nil {
		return err
	}
	*p = pt
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Point) MarshalYAML() (any, error) {
	return []int{p.X, p.Y}, nil
}

// UnmarshalJSON implements json.Unmarshaler for [x, y] arrays.
func (p *Point) UnmarshalJSON(data []byte) error {
	var xy []int
	if err := json.Unmarshal(data, &xy); err != nil {
		return fmt.Errorf("decode point: %w", err)
	}
	pt, err := pointFromSlice(xy)
	if err != nil {
		return err
	}
	*p = pt
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int{p.X, p.Y})
}

// UnmarshalTOML implements toml.Unmarshaler for [x, y] arrays.
// TOML integers arrive as int64.
func (p *Point) UnmarshalTOML(v any) error {
	items, ok := v.([]any)
	if !ok {
		return errPointShape
	}
	xy := make([]int, 0, len(items))
	for _, item := range items {
		n, ok := item.(int64)
		if !ok {
			return fmt.Errorf("decode point: coordinate %v is not an integer", item)
		}
		xy = append(xy, int(n))
	}
	pt, err := pointFromSlice(xy)
	if err != nil {
		return err
	}
	*p = pt
	return nil
}
