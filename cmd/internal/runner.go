package internal

import (
	"context"
	"time"

	"github.com/olimci/fuhen/pkg/events"
	"github.com/olimci/fuhen/pkg/machine"
	"github.com/olimci/fuhen/pkg/program"
	"github.com/olimci/fuhen/pkg/stack"
)

// Runner re-evaluates one program file from scratch on every Run, so a
// changed file is always picked up whole.
type Runner struct {
	path      string
	precision int
	handler   events.Handler
}

type RunResult struct {
	Name      string
	Stack     stack.Stack[float64]
	Precision int
	Words     int
	Duration  time.Duration
	Err       error
}

func NewRunner(path string, precision int, handler events.Handler) *Runner {
	if handler == nil {
		handler = events.NewNoopHandler()
	}
	return &Runner{
		path:      path,
		precision: precision,
		handler:   handler,
	}
}

func (r *Runner) Run(ctx context.Context) RunResult {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return RunResult{Err: err, Duration: time.Since(start)}
	}

	prog, err := program.Load(r.path)
	if err != nil {
		return RunResult{Err: err, Duration: time.Since(start)}
	}

	collector := events.NewCollector(r.handler)
	m := machine.New(
		machine.WithHandler(collector),
		machine.WithStack(stack.New(prog.Meta.Stack...)),
		machine.WithVars(prog.Meta.Vars),
	)
	err = m.Eval(prog.Words)

	precision := r.precision
	if prog.Meta.Precision > 0 {
		precision = prog.Meta.Precision
	}

	return RunResult{
		Name:      prog.Name,
		Stack:     m.Stack(),
		Precision: precision,
		Words:     collector.Summary().Words,
		Duration:  time.Since(start),
		Err:       err,
	}
}
