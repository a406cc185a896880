package template

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Engine holds compiled templates by name.
// It is safe for concurrent use; templates can be replaced while others render.
type Engine struct {
	mu        sync.RWMutex
	templates map[string]*Template
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for compile and replace events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an empty engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		templates: make(map[string]*Template),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add compiles source and stores it under name, replacing any existing template.
// On a compile error the previous template, if any, is kept.
func (e *Engine) Add(name, source string) error {
	tmpl, err := Compile(source)
	if err != nil {
		e.logger.Warn("template failed to compile",
			slog.String("name", name),
			slog.Any("error", err))
		return fmt.Errorf("template %q: %w", name, err)
	}
	e.Set(name, tmpl)
	return nil
}

// Set stores an already compiled template under name.
// A nil template is ignored and any stored template is kept.
func (e *Engine) Set(name string, tmpl *Template) {
	if tmpl == nil {
		e.logger.Warn("ignoring nil template", slog.String("name", name))
		return
	}

	e.mu.Lock()
	_, replaced := e.templates[name]
	e.templates[name] = tmpl
	e.mu.Unlock()

	e.logger.Debug("template stored",
		slog.String("name", name),
		slog.Int("chunks", len(tmpl.chunks)),
		slog.Bool("replaced", replaced))
}

// Get returns the template stored under name.
func (e *Engine) Get(name string) (*Template, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	tmpl, ok := e.templates[name]
	return tmpl, ok
}

// Remove deletes the template stored under name.
func (e *Engine) Remove(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.templates, name)
}

// Names returns the stored template names, sorted alphabetically.
func (e *Engine) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render renders the named template to w.
// Returns an error wrapping ErrNotFound if no such template is stored.
func (e *Engine) Render(w io.Writer, name string, data Data) error {
	tmpl, ok := e.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return tmpl.Render(w, data)
}

// RenderString renders the named template into a string.
func (e *Engine) RenderString(name string, data Data) (string, error) {
	var buf strings.Builder
	if err := e.Render(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Parse validates source and returns the variable names it references,
// without storing it.
func (e *Engine) Parse(source string) ([]string, error) {
	tmpl, err := Compile(source)
	if err != nil {
		return nil, err
	}
	return tmpl.Variables(), nil
}
