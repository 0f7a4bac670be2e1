package cmd

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/olimci/fuhen/cmd/internal"
	"github.com/olimci/fuhen/pkg/events"
)

// Watch re-evaluates a program file whenever it changes on disk.
func Watch(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return errors.New("watch: a program file is required")
	}

	opts, err := loadOptions(ctx, cmd)
	if err != nil {
		return err
	}

	watcher, err := internal.NewFileWatcher(internal.WatcherConfig{
		Paths:    []string{path},
		Debounce: cmd.Duration("debounce"),
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	watchEvents, watchErrors, err := watcher.Start(ctx)
	if err != nil {
		return err
	}

	var handler events.Handler
	if opts.Trace {
		handler = events.NewLogHandler(log.Default())
	}
	runner := internal.NewRunner(path, opts.Precision, handler)

	log.Printf("fuhen watching %s", strings.Join(watcher.Watched(), ", "))

	count := 1
	logRunResult(runner.Run(ctx), "initial", count)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-watchEvents:
			count++
			logRunResult(runner.Run(ctx), ev.Reason, count)

		case err := <-watchErrors:
			log.Printf("watch error: %v", err)
		}
	}
}

func logRunResult(r internal.RunResult, reason string, n int) {
	if r.Err != nil {
		log.Printf("ERR  eval #%d failed in %s (%s): %v",
			n, r.Duration.Truncate(time.Millisecond), reason, r.Err)
		return
	}
	log.Printf("OK   eval #%d in %s (%s): %s",
		n, r.Duration.Truncate(time.Millisecond), reason, renderStack(r.Stack, r.Precision))
}
