package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/olimci/fuhen/cmd/ui/repl_ui"
	"github.com/olimci/fuhen/pkg/config"
)

// Repl starts the interactive stack machine.
func Repl(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = config.DefaultConfig()
	}

	return repl_ui.Run(ctx, repl_ui.Params{
		Prompt:       cfg.Repl.Prompt,
		HistoryLimit: cfg.Repl.HistoryLimit,
		Precision:    cfg.Eval.Precision,
	})
}
