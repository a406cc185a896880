package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/figkit/loader"
	"github.com/randalmurphal/figkit/template"
)

type checkFlags struct {
	chunks bool
	width  int
}

func newCheckCmd(global *globalOptions) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <template>...",
		Short: "Compile templates and report their variables",
		Long: `Compile each template and list the variables it uses.
Exits non-zero if any template fails to compile.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, global, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.chunks, "chunks", false, "List every chunk with its span")
	cmd.Flags().IntVar(&flags.width, "width", 40, "Elide chunk text longer than this many characters (0 for no limit)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, global *globalOptions, flags *checkFlags) error {
	out := cmd.OutOrStdout()
	s := newStyles()

	failed := 0
	for _, path := range args {
		tf, err := loader.LoadTemplate(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", s.fail.Sprint("FAIL"), path, err)
			continue
		}
		slog.Debug("template compiled", slog.String("path", path), slog.Int("chunks", len(tf.Template.Chunks())))

		if global.quiet {
			continue
		}
		fmt.Fprintf(out, "%s %s\n", s.ok.Sprint("ok"), s.name.Sprint(path))
		printVariables(out, tf)
		if flags.chunks {
			printChunks(out, tf.Template, flags.width)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d templates failed to compile", failed, len(args))
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func printVariables(out io.Writer, tf *loader.TemplateFile) {
	vars := tf.Template.Variables()
	if len(vars) == 0 {
		fmt.Fprintln(out, "  no variables")
		return
	}
	for _, name := range vars {
		if def, ok := tf.Defaults.Get(name); ok {
			fmt.Fprintf(out, "  {{%s}} = %s\n", name, strconv.Quote(def))
		} else {
			fmt.Fprintf(out, "  {{%s}}\n", name)
		}
	}

	// Frontmatter defaults the body never uses.
	var unused []string
	used := make(map[string]bool, len(vars))
	for _, name := range vars {
		used[name] = true
	}
	for name := range tf.Defaults {
		if !used[name] {
			unused = append(unused, name)
		}
	}
	sort.Strings(unused)
	for _, name := range unused {
		fmt.Fprintf(out, "  unused default %s\n", name)
	}
}

func printChunks(out io.Writer, tmpl *template.Template, width int) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  KIND\tSPAN\tTEXT")
	for _, c := range tmpl.Chunks() {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", c.Kind, c.Span, strconv.Quote(elideMiddle(tmpl.Text(c), width)))
	}
	w.Flush()
}
