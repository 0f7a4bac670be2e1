package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/olimci/fuhen/pkg/version"
)

var Version = version.String()

func Execute(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:  "fuhen",
		Usage: "A persistent stack machine",
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("fuhen version %s\n", Version)
					return nil
				},
			},
			{
				Name:      "init",
				Usage:     "Scaffold a starter program",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Value: "", Usage: "Program name (defaults to file name)"},
					&cli.BoolFlag{Name: "literate", Aliases: []string{"l"}, Value: false, Usage: "Write a literate markdown program"},
					&cli.BoolFlag{Name: "interactive", Aliases: []string{"i"}, Value: false, Usage: "Ask for name and format interactively"},
					&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Value: false, Usage: "Overwrite an existing file"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return Init(ctx, cmd)
				},
			},
			{
				Name:      "eval",
				Usage:     "Evaluate program files and print their final stacks",
				ArgsUsage: "files...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "fuhen.toml", Usage: "config file path"},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Value: 0, Usage: "max concurrent evaluations (overrides config)"},
					&cli.BoolFlag{Name: "trace", Aliases: []string{"t"}, Value: false, Usage: "print a trace line per word"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return Eval(ctx, cmd)
				},
			},
			{
				Name:  "repl",
				Usage: "Interactive stack machine with undo",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "fuhen.toml", Usage: "config file path"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return Repl(ctx, cmd)
				},
			},
			{
				Name:      "watch",
				Usage:     "Re-evaluate a program whenever it changes",
				ArgsUsage: "file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "fuhen.toml", Usage: "config file path"},
					&cli.DurationFlag{Name: "debounce", Value: 250 * time.Millisecond, Usage: "Debounce window for re-evaluation"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return Watch(ctx, cmd)
				},
			},
		},
	}

	return app.Run(ctx, args)
}
