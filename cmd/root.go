// Package cmd implements the termgrid command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/termgrid/internal/config"
	"github.com/oakwood-commons/termgrid/internal/filter"
	"github.com/oakwood-commons/termgrid/internal/formatter"
	"github.com/oakwood-commons/termgrid/internal/limiter"
	"github.com/oakwood-commons/termgrid/pkg/grid"
	"github.com/oakwood-commons/termgrid/pkg/loader"
	"github.com/oakwood-commons/termgrid/pkg/logger"
	"github.com/oakwood-commons/termgrid/pkg/settings"
)

// errShowHelp is returned when no input is available and usage should be
// printed instead.
var errShowHelp = errors.New("no input provided")

// rootOptions holds the flag values of one command instance.
type rootOptions struct {
	configFile  string
	debug       bool
	output      string
	inputFormat string
	expression  string
	truncate    int

	width     int
	columns   int
	direction string
	spaces    int
	separator string
	tabSize   int
	measure   string

	limit  int
	offset int
	tail   int
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   settings.CliBinaryName + " [file]",
		Short: "Lay out a list of strings as a terminal grid",
		Long: `termgrid reads items from a file or stdin and prints them in columns,
the way ls does, choosing the fewest rows that fit the terminal width.

Items are read one per line, or from a JSON, YAML or TOML list.`,
		Example: "  ls | termgrid\n" +
			"  termgrid --direction across --separator ' | ' words.txt\n" +
			"  termgrid --columns 3 items.yaml\n" +
			"  termgrid --filter 'item.endsWith(\".go\")' --output json files.txt",
		Args:          cobra.MaximumNArgs(1),
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// debug maps to zap's debug level (-1), else info (0).
			var level int8
			if opts.debug {
				level = -1
			}
			lgr := logger.Get(level)
			lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logger.WithLogger(ctx, lgr))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRoot(cmd, opts, args)
			if errors.Is(err, errShowHelp) {
				return cmd.Help()
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "grid", "output format: grid|yaml|json|toml")
	f.StringVarP(&opts.inputFormat, "input-format", "f", "", "input format: auto|lines|json|yaml|toml (default from config)")
	f.StringVarP(&opts.expression, "filter", "e", "", "CEL predicate over item, index and width, e.g. 'width < 20 && !item.startsWith(\".\")'")
	f.IntVar(&opts.truncate, "truncate", 0, "shorten items wider than this many columns (0 disables)")

	f.IntVarP(&opts.width, "width", "w", 0, "maximum grid width (default: terminal width)")
	f.IntVarP(&opts.columns, "columns", "c", 0, "use exactly this many columns instead of fitting a width")
	f.StringVarP(&opts.direction, "direction", "d", "", "fill order: down (columns first) or across (rows first)")
	f.IntVarP(&opts.spaces, "spaces", "s", 0, "separate columns with this many spaces")
	f.StringVar(&opts.separator, "separator", "", "separate columns with this literal text")
	f.IntVarP(&opts.tabSize, "tab-size", "T", 0, "replace runs of this many separator spaces with a tab")
	f.StringVar(&opts.measure, "measure", "", "width oracle: unicode|grapheme|ansi|bytes")

	f.IntVar(&opts.limit, "limit", 0, "show at most N items")
	f.IntVar(&opts.offset, "offset", 0, "skip the first N items")
	f.IntVar(&opts.tail, "tail", 0, "show the last N items (mutually exclusive with --limit; ignores --offset)")
	cmd.MarkFlagsMutuallyExclusive("spaces", "separator")

	cmd.PersistentFlags().StringVar(&opts.configFile, "config-file", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log layout decisions to stderr")

	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	lgr := *logger.FromContext(ctx)

	limits := limiter.Config{Limit: opts.limit, Offset: opts.offset, Tail: opts.tail}
	if err := limits.Validate(); err != nil {
		return fmt.Errorf("record limiting: %w", err)
	}
	out, err := formatter.ParseOutput(opts.output)
	if err != nil {
		return err
	}

	cfgPath := resolveConfigPath(opts.configFile)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	cfg = applyFlagOverrides(cmd.Flags(), opts, cfg)
	lgr.V(1).Info("config loaded", "path", cfgPath)

	run := settings.NewCliParams()
	if opts.debug {
		run.MinLogLevel = -1
	}
	run.TerminalWidth = detectTerminalWidth()
	if len(args) == 1 {
		run.Input = settings.InputSettings{FromArgs: true, Path: args[0]}
	}
	ctx = settings.IntoContext(ctx, run)

	format, err := loader.ParseFormat(cfg.Input.Format)
	if err != nil {
		return err
	}
	raw, err := readItems(ctx, cmd.InOrStdin(), format)
	if err != nil {
		return err
	}

	gridOpts, err := cfg.Layout.Options(fallbackWidth(run.TerminalWidth), lgr)
	if err != nil {
		return err
	}
	cells := make([]grid.Cell, len(raw))
	for i, s := range raw {
		cells[i] = grid.Measure(formatter.Truncate(formatter.Flatten(s), opts.truncate), gridOpts.Measure)
	}

	if opts.expression != "" {
		p, err := filter.Compile(opts.expression)
		if err != nil {
			return err
		}
		if cells, err = filter.Apply(p, cells); err != nil {
			return err
		}
	}
	cells = limiter.Apply(limits, cells)
	lgr.V(1).Info("items ready", logger.ItemsKey, len(cells), logger.TargetKey, gridOpts.Target.String())

	g := grid.NewOf[grid.Cell](gridOpts)
	g.Reserve(len(cells))
	for _, c := range cells {
		g.Add(c)
	}

	d, ok := g.Layout()
	if !ok {
		lgr.V(1).Info("no layout fits, using one column", "widest", g.Widest())
		d = g.FitIntoColumns(1)
	}

	if out == formatter.OutputGrid {
		_, err = d.WriteTo(cmd.OutOrStdout())
		return err
	}
	b, err := formatter.Encode(formatter.NewReport(g, d, !ok), out)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

// readItems loads from the file named in the run settings, else from stdin.
// An interactive stdin has nothing to read.
func readItems(ctx context.Context, stdin io.Reader, format loader.Format) ([]string, error) {
	if run, ok := settings.FromContext(ctx); ok && run.Input.FromArgs {
		return loader.LoadFile(run.Input.Path, format)
	}
	r := stdin
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errShowHelp
	}
	return loader.LoadReader(r, format)
}
