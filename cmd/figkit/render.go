package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/figkit/config"
	"github.com/randalmurphal/figkit/figure"
	"github.com/randalmurphal/figkit/loader"
	"github.com/randalmurphal/figkit/postscript"
	"github.com/randalmurphal/figkit/template"
)

// renderFlags holds render's command line overrides.
type renderFlags struct {
	data         []string
	figure       string
	output       string
	key          string
	format       string
	watch        bool
	pollInterval time.Duration
	vars         []string
}

func newRenderCmd(global *globalOptions) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [template]",
		Short: "Render a template",
		Long: `Render a template with variables from data files and an optional embedded figure.

Settings come from --config, then FIGKIT_* environment variables, then flags.
Variables are merged from the template's frontmatter, the data files in order,
and --set, each overriding the last.`,
		Example: `  figkit render page.ps.tmpl --data site.yaml --figure frame.yaml -o page.ps
  figkit render --config figkit.toml --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, global, flags)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&flags.data, "data", "d", nil, "Variable files (YAML, TOML or JSON), merged in order")
	f.StringVarP(&flags.figure, "figure", "f", "", "Figure file to embed")
	f.StringVarP(&flags.output, "output", "o", "", "Output file (default stdout)")
	f.StringVar(&flags.key, "key", postscript.DefaultKey, "Template variable the figure replaces")
	f.StringVar(&flags.format, "format", config.FormatPostScript, "Figure format: postscript, text")
	f.BoolVarP(&flags.watch, "watch", "w", false, "Re-render when an input changes")
	f.DurationVar(&flags.pollInterval, "poll-interval", loader.DefaultPollInterval, "Poll interval when file notifications are unavailable")
	f.StringArrayVar(&flags.vars, "set", nil, "Set a variable (name=value), may be repeated")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, global *globalOptions, flags *renderFlags) error {
	cfg, err := buildConfig(cmd, args, global, flags)
	if err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := newLogger(cmd.ErrOrStderr(), global.level(level))

	r := newRenderer(cfg, cmd.OutOrStdout(), logger)
	if !cfg.Watch {
		return r.render()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	return r.watch(ctx, cmd.ErrOrStderr(), global.quiet)
}

// buildConfig layers the config file, environment and flags.
func buildConfig(cmd *cobra.Command, args []string, global *globalOptions, flags *renderFlags) (config.Config, error) {
	cfg := config.DefaultConfig()
	if global.configPath != "" {
		loaded, err := config.Load(global.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	cfg.LoadFromEnv()

	if len(args) > 0 {
		cfg = cfg.WithTemplate(args[0])
	}

	changed := cmd.Flags().Changed
	if changed("data") {
		cfg.Data = flags.data
	}
	if changed("figure") {
		cfg.Figure = flags.figure
	}
	if changed("output") {
		cfg.Output = flags.output
	}
	if changed("key") {
		cfg.FigureKey = flags.key
	}
	if changed("format") {
		cfg.Format = flags.format
	}
	if changed("watch") {
		cfg.Watch = flags.watch
	}
	if changed("poll-interval") {
		cfg.PollInterval = config.Duration(flags.pollInterval)
	}
	for _, kv := range flags.vars {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return config.Config{}, fmt.Errorf("invalid --set %q: expected name=value", kv)
		}
		cfg = cfg.WithVar(name, value)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// renderer renders the configured document, keeping the last template that
// compiled so watch mode survives a broken edit.
type renderer struct {
	cfg    config.Config
	engine *template.Engine
	stdout io.Writer
	logger *slog.Logger

	defaults template.Data
}

func newRenderer(cfg config.Config, stdout io.Writer, logger *slog.Logger) *renderer {
	return &renderer{
		cfg:    cfg,
		engine: template.NewEngine(template.WithLogger(logger)),
		stdout: stdout,
		logger: logger,
	}
}

// render loads every input and writes the document.
func (r *renderer) render() error {
	tmpl, err := r.loadTemplate()
	if err != nil {
		return err
	}

	data, err := r.loadData()
	if err != nil {
		return err
	}

	doc := postscript.NewDocument(tmpl).
		WithData(data).
		WithKey(r.cfg.FigureKey)
	if r.cfg.Format == config.FormatText {
		doc = doc.WithEncoder(postscript.DisplayEncoder)
	}

	if r.cfg.Figure != "" {
		fig, err := loader.LoadFigure(r.cfg.Figure)
		if err != nil {
			return fmt.Errorf("loading figure: %w", err)
		}
		doc = doc.Embed(fig)
		r.logFigure(fig)
	}

	if missing := missingVariables(tmpl, data, r.cfg); len(missing) > 0 {
		r.logger.Warn("variables without a value are written unchanged",
			slog.Any("names", missing))
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return r.write(buf.Bytes())
}

// loadTemplate recompiles the template, falling back to the last good one.
func (r *renderer) loadTemplate() (*template.Template, error) {
	name := r.cfg.Template

	tf, err := loader.LoadTemplate(name)
	if err != nil {
		prev, ok := r.engine.Get(name)
		if !ok {
			return nil, fmt.Errorf("loading template: %w", err)
		}
		r.logger.Warn("template failed to load, using previous version",
			slog.String("path", name),
			slog.Any("error", err))
		return prev, nil
	}

	r.engine.Set(name, tf.Template)
	r.defaults = tf.Defaults
	r.logger.Debug("template loaded",
		slog.String("path", name),
		slog.Int("chunks", len(tf.Template.Chunks())),
		slog.Any("variables", tf.Template.Variables()))
	return tf.Template, nil
}

func (r *renderer) loadData() (template.Data, error) {
	data := template.NewData(r.defaults)
	for _, path := range r.cfg.Data {
		loaded, err := loader.LoadData(path)
		if err != nil {
			return nil, fmt.Errorf("loading data: %w", err)
		}
		r.logger.Debug("data loaded", slog.String("path", path), slog.Int("variables", len(loaded)))
		data = data.Merge(loaded)
	}
	return data.Merge(r.cfg.Vars), nil
}

func (r *renderer) logFigure(f figure.Figure) {
	lo, hi, ok := f.Bounds()
	if !ok {
		r.logger.Debug("figure loaded", slog.String("path", r.cfg.Figure), slog.Bool("empty", true))
		return
	}
	r.logger.Debug("figure loaded",
		slog.String("path", r.cfg.Figure),
		slog.String("min", lo.String()),
		slog.String("max", hi.String()))
}

// write sends output to stdout or replaces the output file.
func (r *renderer) write(out []byte) error {
	if r.cfg.Output == "" || r.cfg.Output == "-" {
		_, err := r.stdout.Write(out)
		return err
	}
	if dir := filepath.Dir(r.cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(r.cfg.Output, out, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// watch renders once, then again after every input change until ctx ends.
// Render errors are reported and do not stop watching.
func (r *renderer) watch(ctx context.Context, status io.Writer, quiet bool) error {
	s := newStyles()
	report := func(err error) {
		switch {
		case err != nil:
			fmt.Fprintf(status, "%s %v\n", s.fail.Sprint("✗"), err)
		case !quiet:
			fmt.Fprintf(status, "%s rendered %s\n", s.ok.Sprint("✓"), s.name.Sprint(r.target()))
		}
	}

	report(r.render())

	w := loader.NewWatcher(r.cfg.Inputs(),
		loader.WithPollInterval(time.Duration(r.cfg.PollInterval)),
		loader.WithWatchLogger(r.logger))
	if !quiet {
		fmt.Fprintf(status, "%s\n", s.muted.Sprintf("watching %d files, press Ctrl+C to stop", len(w.Paths())))
	}

	for ev := range w.Watch(ctx) {
		r.logger.Info("input changed", slog.String("path", ev.Path), slog.String("op", string(ev.Op)))
		report(r.render())
	}
	return nil
}

func (r *renderer) target() string {
	if r.cfg.Output == "" || r.cfg.Output == "-" {
		return "stdout"
	}
	return r.cfg.Output
}

// missingVariables lists template variables with no value, ignoring the
// figure key when a figure is embedded.
func missingVariables(tmpl *template.Template, data template.Data, cfg config.Config) []string {
	var missing []string
	for _, name := range tmpl.Missing(data) {
		if name == cfg.FigureKey && cfg.Figure != "" {
			continue
		}
		missing = append(missing, name)
	}
	return missing
}
