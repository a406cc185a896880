package main

import (
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by all subcommands.
type globalOptions struct {
	verbose    bool
	quiet      bool
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "figkit",
		Short: "Render templates with embedded figures",
		Long: `figkit compiles templates with {{variable}} placeholders and renders them with
variables from YAML, TOML or JSON files. A figure (open polyline, closed polygon
or composition) can be embedded in PostScript bracket notation.

Placeholders without a value are written through unchanged.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), opts.level(slog.LevelInfo)))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Quiet mode (errors only)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (YAML, TOML or JSON)")

	// Add subcommands
	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// level returns the log level selected by --verbose or --quiet, or fallback.
func (o *globalOptions) level(fallback slog.Level) slog.Level {
	switch {
	case o.verbose:
		return slog.LevelDebug
	case o.quiet:
		return slog.LevelError
	default:
		return fallback
	}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// styles holds color formatters for status lines.
type styles struct {
	ok    *color.Color
	fail  *color.Color
	name  *color.Color
	muted *color.Color
}

func newStyles() *styles {
	return &styles{
		ok:    color.New(color.FgHiGreen),
		fail:  color.New(color.Bold, color.FgHiRed),
		name:  color.New(color.Bold),
		muted: color.New(color.FgHiBlack),
	}
}
