package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/figkit/figure"
	"github.com/randalmurphal/figkit/template"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// =============================================================================
// Registry
// =============================================================================

func TestExtensions_Defaults(t *testing.T) {
	assert.Equal(t, []string{".json", ".toml", ".yaml", ".yml"}, Extensions())
}

func TestRegister(t *testing.T) {
	Register("LINES", func(data []byte, v any) error {
		m := v.(*map[string]any)
		*m = map[string]any{"first": strings.SplitN(string(data), "\n", 2)[0]}
		return nil
	})
	defer Unregister(".lines")

	assert.Contains(t, Extensions(), ".lines")
	assert.Panics(t, func() { Register(".lines", nil) })

	var got map[string]any
	require.NoError(t, Decode("x.Lines", []byte("a\nb"), &got))
	assert.Equal(t, "a", got["first"])
}

func TestDecoderFor_Unsupported(t *testing.T) {
	_, err := DecoderFor("figure.xml")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "figure.xml")

	_, err = DecoderFor("noext")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

// =============================================================================
// Data
// =============================================================================

func TestLoadData_Formats(t *testing.T) {
	dir := t.TempDir()
	want := template.Data{
		"title":       "Frame",
		"width":       "210",
		"scale":       "1.5",
		"draft":       "true",
		"page.margin": "10",
		"tags.0":      "a",
		"tags.1":      "b",
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "vars.yaml",
			content: `title: Frame
width: 210
scale: 1.5
draft: true
page:
  margin: 10
tags: [a, b]
`,
		},
		{
			name: "toml",
			file: "vars.toml",
			content: `title = "Frame"
width = 210
scale = 1.5
draft = true
tags = ["a", "b"]

[page]
margin = 10
`,
		},
		{
			name:    "json",
			file:    "vars.json",
			content: `{"title":"Frame","width":210,"scale":1.5,"draft":true,"page":{"margin":10},"tags":["a","b"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			got, err := LoadData(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestFlattenData_NullAndTables(t *testing.T) {
	got := FlattenData(map[string]any{
		"empty": nil,
		"rows":  []map[string]any{{"x": int64(1)}, {"x": int64(2)}},
	})
	assert.Equal(t, template.Data{"empty": "", "rows.0.x": "1", "rows.1.x": "2"}, got)
}

func TestLoadData_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadData(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, dir, "broken.json", "{not json")
	_, err = LoadData(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.json")
}

// =============================================================================
// Templates
// =============================================================================

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantBody     string
		wantDefaults template.Data
		wantErr      error
	}{
		{
			name:         "no frontmatter",
			content:      "%!PS\n{{figure}}\n",
			wantBody:     "%!PS\n{{figure}}\n",
			wantDefaults: template.Data{},
		},
		{
			name:         "frontmatter defaults",
			content:      "---\ntitle: Untitled\npage:\n  size: a4\n---\n%%Title: {{title}}\n",
			wantBody:     "%%Title: {{title}}\n",
			wantDefaults: template.Data{"title": "Untitled", "page.size": "a4"},
		},
		{
			name:         "empty frontmatter",
			content:      "---\n---\nbody",
			wantBody:     "body",
			wantDefaults: template.Data{},
		},
		{
			name:         "frontmatter only",
			content:      "---\na: 1\n---",
			wantBody:     "",
			wantDefaults: template.Data{"a": "1"},
		},
		{
			name:         "dashes later in body are literal",
			content:      "x\n---\ny",
			wantBody:     "x\n---\ny",
			wantDefaults: template.Data{},
		},
		{
			name:         "crlf line endings",
			content:      "---\r\ntitle: x\r\n---\r\nHello {{title}}\r\nbye",
			wantBody:     "Hello {{title}}\r\nbye",
			wantDefaults: template.Data{"title": "x"},
		},
		{
			name:         "crlf frontmatter only",
			content:      "---\r\na: 1\r\n---",
			wantBody:     "",
			wantDefaults: template.Data{"a": "1"},
		},
		{
			name:         "lone delimiter is body",
			content:      "---",
			wantBody:     "---",
			wantDefaults: template.Data{},
		},
		{
			name:    "unclosed crlf frontmatter",
			content: "---\r\ntitle: x\r\nHello",
			wantErr: ErrFrontmatter,
		},
		{
			name:    "unclosed frontmatter",
			content: "---\ntitle: x\n{{figure}}",
			wantErr: ErrFrontmatter,
		},
		{
			name:    "invalid yaml",
			content: "---\ntitle: [unclosed\n---\nbody",
			wantErr: ErrFrontmatter,
		},
		{
			name:    "body does not compile",
			content: "---\na: 1\n---\n{{oops",
			wantErr: template.ErrUnmatchedVariable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf, err := ParseTemplate(tt.content)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, tf.Template.Source())
			assert.Equal(t, tt.wantDefaults, tf.Defaults)
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.ps.tmpl", "---\ntitle: Frame\n---\n%%Title: {{title}}\n{{figure}}\n")

	tf, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, path, tf.Path)
	assert.Equal(t, []string{"title", "figure"}, tf.Template.Variables())

	out, err := tf.Template.RenderString(tf.Defaults)
	require.NoError(t, err)
	assert.Equal(t, "%%Title: Frame\n{{figure}}\n", out)

	crlf := writeFile(t, dir, "crlf.tmpl", "---\r\ntitle: x\r\n---\r\nHello {{title}}")
	tf, err = LoadTemplate(crlf)
	require.NoError(t, err)
	out, err = tf.Template.RenderString(tf.Defaults)
	require.NoError(t, err)
	assert.Equal(t, "Hello x", out)

	_, err = LoadTemplate(filepath.Join(dir, "missing.tmpl"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// =============================================================================
// Figures
// =============================================================================

func TestLoadFigure(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "frame.yaml", `
kind: compose
figures:
  - kind: open
    points: [[0, 0], [10, 0]]
  - kind: closed
    points: [[1, 1], [2, 2], [3, 1]]
`)

	got, err := LoadFigure(path)
	require.NoError(t, err)
	want := figure.Compose(
		figure.Open(figure.Pt(0, 0), figure.Pt(10, 0)),
		figure.Closed(figure.Pt(1, 1), figure.Pt(2, 2), figure.Pt(3, 1)),
	)
	assert.Equal(t, want, got)
}

func TestLoadFigure_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.toml", "kind = \"spiral\"\n")

	_, err := LoadFigure(path)
	require.ErrorIs(t, err, figure.ErrUnknownKind)
	assert.Contains(t, err.Error(), "bad.toml")
}

// =============================================================================
// Watcher
// =============================================================================

// expectEvent keeps modifying path until the watcher reports it, which
// tolerates the watcher goroutine starting after the first write.
func expectEvent(t *testing.T, events <-chan Event, path string) Event {
	t.Helper()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(60 * time.Millisecond)
	defer tick.Stop()

	content := "v"
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event channel closed")
			if ev.Path == absPath(path) {
				return ev
			}
		case <-tick.C:
			content += "v"
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		case <-deadline:
			t.Fatalf("no event for %s", path)
		}
	}
}

func TestWatcher_Polling(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.tmpl", "")

	ctx, cancel := context.WithCancel(context.Background())
	w := NewWatcher([]string{path, "", path}, WithPolling(), WithPollInterval(10*time.Millisecond))
	assert.Len(t, w.Paths(), 1)

	events := w.Watch(ctx)
	ev := expectEvent(t, events, path)
	assert.Equal(t, OpWrite, ev.Op)

	cancel()
	for range events {
	}
}

func TestWatcher_PollingRemove(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.yaml", "a: 1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := NewWatcher([]string{path}, WithPolling(), WithPollInterval(10*time.Millisecond)).Watch(ctx)

	// Give the poller a baseline before removing the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.Remove(path))

	select {
	case ev := <-events:
		assert.Equal(t, OpRemove, ev.Op)
	case <-time.After(5 * time.Second):
		t.Fatal("no remove event")
	}
}

func TestWatcher_Notify(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "frame.yaml", "")
	other := writeFile(t, dir, "unrelated.txt", "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := NewWatcher([]string{path}, WithDebounce(5*time.Millisecond)).Watch(ctx)

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0644))
	ev := expectEvent(t, events, path)
	assert.Equal(t, absPath(path), ev.Path)
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := NewWatcher([]string{filepath.Join(t.TempDir(), "x")}).Watch(ctx)
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed")
	}
}
