package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/randalmurphal/figkit/loader"
	"github.com/randalmurphal/figkit/postscript"
)

// Output formats for the embedded figure.
const (
	FormatPostScript = "postscript"
	FormatText       = "text"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the inputs and options for rendering a document.
// Paths in a config file are relative to the file's directory.
type Config struct {
	// --- Inputs ---

	// Template is the template file to render.
	// Required.
	Template string `json:"template" yaml:"template" toml:"template" jsonschema:"description=Template file to render"`

	// Data lists variable files (YAML, TOML or JSON).
	// Later files override earlier ones.
	Data []string `json:"data,omitempty" yaml:"data,omitempty" toml:"data,omitempty" jsonschema:"description=Variable files merged in order"`

	// Figure is the figure file to embed. Optional.
	Figure string `json:"figure,omitempty" yaml:"figure,omitempty" toml:"figure,omitempty" jsonschema:"description=Figure file to embed"`

	// Vars are inline variables. They override the data files.
	Vars map[string]string `json:"vars,omitempty" yaml:"vars,omitempty" toml:"vars,omitempty" jsonschema:"description=Inline variables overriding data files"`

	// --- Output ---

	// Output is the file to write. Empty or "-" writes to stdout.
	Output string `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty" jsonschema:"description=Output file; empty or - for stdout"`

	// FigureKey is the template variable the figure replaces.
	// Default: "figure".
	FigureKey string `json:"figure_key,omitempty" yaml:"figure_key,omitempty" toml:"figure_key,omitempty" jsonschema:"default=figure"`

	// Format selects how the figure is embedded: "postscript" bracket
	// notation or its "text" display form.
	Format string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty" jsonschema:"enum=postscript,enum=text,default=postscript"`

	// --- Watch mode ---

	// Watch re-renders whenever an input file changes.
	Watch bool `json:"watch,omitempty" yaml:"watch,omitempty" toml:"watch,omitempty"`

	// PollInterval is used when file notifications are unavailable.
	PollInterval Duration `json:"poll_interval,omitempty" yaml:"poll_interval,omitempty" toml:"poll_interval,omitempty"`

	// --- Logging ---

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" toml:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
}

// DefaultConfig returns a Config with defaults set.
// Template must still be set before use.
func DefaultConfig() Config {
	return Config{
		FigureKey:    postscript.DefaultKey,
		Format:       FormatPostScript,
		PollInterval: Duration(loader.DefaultPollInterval),
		LogLevel:     "info",
	}
}

// Load reads the config file at path over the defaults. Relative paths in
// the file are resolved against its directory.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := loader.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

func (c *Config) resolve(base string) {
	abs := func(p string) string {
		if p == "" || p == "-" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	c.Template = abs(c.Template)
	c.Figure = abs(c.Figure)
	c.Output = abs(c.Output)
	for i, p := range c.Data {
		c.Data[i] = abs(p)
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use the FIGKIT_ prefix and take precedence over
// existing values.
//
// Supported variables:
//   - FIGKIT_TEMPLATE: Template file
//   - FIGKIT_DATA: Data files, separated by the OS path list separator
//   - FIGKIT_FIGURE: Figure file
//   - FIGKIT_OUTPUT: Output file
//   - FIGKIT_FIGURE_KEY: Variable the figure replaces
//   - FIGKIT_FORMAT: "postscript" or "text"
//   - FIGKIT_WATCH: Watch mode (e.g., "true")
//   - FIGKIT_POLL_INTERVAL: Poll interval (e.g., "250ms")
//   - FIGKIT_LOG_LEVEL: Log level
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("FIGKIT_TEMPLATE"); v != "" {
		c.Template = v
	}
	if v := os.Getenv("FIGKIT_DATA"); v != "" {
		c.Data = filepath.SplitList(v)
	}
	if v := os.Getenv("FIGKIT_FIGURE"); v != "" {
		c.Figure = v
	}
	if v := os.Getenv("FIGKIT_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("FIGKIT_FIGURE_KEY"); v != "" {
		c.FigureKey = v
	}
	if v := os.Getenv("FIGKIT_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("FIGKIT_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Watch = b
		}
	}
	if v := os.Getenv("FIGKIT_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.PollInterval = Duration(d)
		}
	}
	if v := os.Getenv("FIGKIT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Template == "" {
		return fmt.Errorf("%w: template is required", ErrInvalidConfig)
	}
	if c.FigureKey == "" {
		return fmt.Errorf("%w: figure_key is required", ErrInvalidConfig)
	}
	if strings.Contains(c.FigureKey, "}}") {
		return fmt.Errorf("%w: figure_key %q cannot contain }}", ErrInvalidConfig, c.FigureKey)
	}
	switch c.Format {
	case FormatPostScript, FormatText:
	default:
		return fmt.Errorf("%w: format must be %q or %q, got %q", ErrInvalidConfig, FormatPostScript, FormatText, c.Format)
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("%w: poll_interval must be >= 0, got %v", ErrInvalidConfig, c.PollInterval)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns LogLevel as a slog level. An empty LogLevel is info.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Inputs returns every file the render reads, in load order.
func (c Config) Inputs() []string {
	inputs := []string{c.Template}
	inputs = append(inputs, c.Data...)
	if c.Figure != "" {
		inputs = append(inputs, c.Figure)
	}
	return inputs
}

// WithTemplate returns a copy of the config with the specified template.
func (c Config) WithTemplate(path string) Config {
	c.Template = path
	return c
}

// WithVar returns a copy of the config with the variable set.
func (c Config) WithVar(name, value string) Config {
	vars := make(map[string]string, len(c.Vars)+1)
	for k, v := range c.Vars {
		vars[k] = v
	}
	vars[name] = value
	c.Vars = vars
	return c
}
