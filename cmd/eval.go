package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/olimci/fuhen/pkg/config"
	"github.com/olimci/fuhen/pkg/events"
	"github.com/olimci/fuhen/pkg/machine"
	"github.com/olimci/fuhen/pkg/program"
	"github.com/olimci/fuhen/pkg/stack"
)

type evalResult struct {
	name     string
	rendered string
	words    int
	duration time.Duration
}

// Eval evaluates every program file given on the command line,
// concurrently up to the worker limit, and prints the final stacks in
// argument order.
func Eval(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("eval: at least one program file is required")
	}

	opts, err := loadOptions(ctx, cmd)
	if err != nil {
		return err
	}

	var handler events.Handler = events.NewNoopHandler()
	if opts.Trace {
		printer := newTracePrinter(os.Stderr)
		handler = events.NewHandlerFunc(printer.Print)
	}

	results := make([]evalResult, len(files))

	g, gctx := errgroup.WithContext(opts.Context)
	g.SetLimit(opts.MaxWorkers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			prog, err := program.Load(path)
			if err != nil {
				return err
			}

			collector := events.NewCollector(handler)
			m := machine.New(
				machine.WithHandler(collector),
				machine.WithStack(stack.New(prog.Meta.Stack...)),
				machine.WithVars(prog.Meta.Vars),
			)

			start := time.Now()
			if err := m.Eval(prog.Words); err != nil {
				return fmt.Errorf("%s: %w", prog.Name, err)
			}

			precision := opts.Precision
			if prog.Meta.Precision > 0 {
				precision = prog.Meta.Precision
			}

			results[i] = evalResult{
				name:     prog.Name,
				rendered: renderStack(m.Stack(), precision),
				words:    collector.Summary().Words,
				duration: time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%s: %s (%d words in %s)\n",
			r.name, r.rendered, r.words, r.duration.Truncate(time.Microsecond))
	}
	return nil
}

// loadOptions builds evaluation options from the config file and command
// flags. A missing config file at the default path is not an error.
func loadOptions(ctx context.Context, cmd *cli.Command) (*config.Options, error) {
	path := cmd.String("config")
	opts := config.DefaultOptions().WithContext(ctx).WithConfig(path)

	cfg, err := config.Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = config.DefaultConfig()
	}
	opts.FromConfig(cfg)

	if n := int(cmd.Int("workers")); n > 0 {
		opts.WithMaxWorkers(n)
	}
	if cmd.Bool("trace") {
		opts.WithTrace()
	}
	return opts, nil
}

// renderStack formats a stack top-first at the given number of
// significant digits; 0 means full precision.
func renderStack(s stack.Stack[float64], precision int) string {
	if s.IsEmpty() {
		return "(empty)"
	}

	parts := make([]string, 0, s.Len())
	for v := range s.All() {
		parts = append(parts, formatValue(v, precision))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatValue(v float64, precision int) string {
	if precision <= 0 {
		precision = -1
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}
