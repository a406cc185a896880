package template

import (
	"fmt"
	"io"
	"strings"
)

// Template is a compiled template. It owns the source text and the chunks
// that index into it, and is never modified after Compile returns.
type Template struct {
	source string
	chunks []Chunk
}

// Source returns the text the template was compiled from.
func (t *Template) Source() string {
	return t.source
}

// Chunks returns a copy of the compiled chunks in source order, or nil for
// an empty template.
func (t *Template) Chunks() []Chunk {
	if len(t.chunks) == 0 {
		return nil
	}
	out := make([]Chunk, len(t.chunks))
	copy(out, t.chunks)
	return out
}

// Text returns the source text denoted by the chunk's span.
// For a variable this is its name.
func (t *Template) Text(c Chunk) string {
	return c.Span.Text(t.source)
}

// Variables returns the distinct variable names in order of first use.
func (t *Template) Variables() []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range t.chunks {
		if c.Kind != Variable {
			continue
		}
		name := t.Text(c)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// Missing returns the variables that data has no entry for, in order of first use.
func (t *Template) Missing(data Data) []string {
	var missing []string
	for _, name := range t.Variables() {
		if _, ok := data[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Render writes the template to w, substituting variables from data.
//
// Literal chunks are written as they appear in the source. A variable is
// replaced by its value from data; when data has no entry the original
// {{name}} text is written instead. The first write error aborts the render
// and is returned as is.
func (t *Template) Render(w io.Writer, data Data) error {
	for _, c := range t.chunks {
		text := t.Text(c)
		if c.Kind == Variable {
			if value, ok := data[text]; ok {
				text = value
			} else {
				text = c.Extent().Text(t.source)
			}
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	return nil
}

// RenderString renders the template into a string.
func (t *Template) RenderString(data Data) (string, error) {
	var buf strings.Builder
	buf.Grow(len(t.source))
	if err := t.Render(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// String returns the template source.
func (t *Template) String() string {
	return t.source
}

// ValidateVariables checks that every required variable has an entry in data.
// Returns an error wrapping ErrVariable naming the first missing one.
func ValidateVariables(required []string, data Data) error {
	for _, name := range required {
		if _, ok := data[name]; !ok {
			return fmt.Errorf("%w: %s", ErrVariable, name)
		}
	}
	return nil
}
