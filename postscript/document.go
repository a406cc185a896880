package postscript

import (
	"fmt"
	"io"
	"strings"

	"github.com/randalmurphal/figkit/figure"
	"github.com/randalmurphal/figkit/template"
)

// DefaultKey is the template variable a Document fills with its figure.
const DefaultKey = "figure"

// Encoder serializes a figure for embedding.
type Encoder func(f figure.Figure) (string, error)

// DisplayEncoder embeds the figure's display form instead of bracket notation.
func DisplayEncoder(f figure.Figure) (string, error) {
	return f.String(), nil
}

// Document is a template with an optional figure embedded into it.
type Document struct {
	template *template.Template
	figure   *figure.Figure
	data     template.Data
	key      string
	encode   Encoder
}

// NewDocument returns a document rendering tmpl with no figure embedded.
func NewDocument(tmpl *template.Template) *Document {
	return &Document{
		template: tmpl,
		key:      DefaultKey,
		encode:   EncodeToString,
	}
}

// Embed sets the figure substituted into the template.
func (d *Document) Embed(f figure.Figure) *Document {
	d.figure = &f
	return d
}

// WithData sets additional template variables. The embedded figure takes
// precedence over an entry with the same name.
func (d *Document) WithData(data template.Data) *Document {
	d.data = data
	return d
}

// WithKey sets the variable name the figure is substituted for.
func (d *Document) WithKey(key string) *Document {
	d.key = key
	return d
}

// WithEncoder sets how the figure is serialized before embedding.
func (d *Document) WithEncoder(enc Encoder) *Document {
	if enc != nil {
		d.encode = enc
	}
	return d
}

// Data returns the variables the template is rendered with.
func (d *Document) Data() (template.Data, error) {
	if d.figure == nil {
		return d.data, nil
	}
	encoded, err := d.encode(*d.figure)
	if err != nil {
		return nil, err
	}
	return d.data.With(d.key, encoded), nil
}

// Render writes the document to w.
// Without an embedded figure the template's {{figure}} passes through unchanged.
func (d *Document) Render(w io.Writer) error {
	if d.template == nil {
		return ErrNoTemplate
	}
	data, err := d.Data()
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return d.template.Render(w, data)
}

// String renders the document, returning the error text on failure.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return err.Error()
	}
	return b.String()
}
