package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/olimci/fuhen/pkg/fileutils"
)

var ErrTargetExists = errors.New("target already exists")

// Init scaffolds a starter program file. With no target argument, or
// with --interactive, the name and format are asked for.
func Init(ctx context.Context, cmd *cli.Command) error {
	target := strings.TrimSpace(cmd.Args().First())
	name := strings.TrimSpace(cmd.String("name"))
	literate := cmd.Bool("literate")
	force := cmd.Bool("force")

	if target == "" || cmd.Bool("interactive") {
		var err error
		target, name, literate, err = initInteractive(ctx, target, name, literate)
		if err != nil {
			return err
		}
	}

	if target == "" {
		return errors.New("init: a target file is required")
	}
	if filepath.Ext(target) == "" {
		if literate {
			target += ".md"
		} else {
			target += ".rpn"
		}
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(target), filepath.Ext(target))
	}

	if _, err := os.Stat(target); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrTargetExists, target)
	}

	tmpl := starterPlain.Get()
	if literate || isMarkdown(target) {
		tmpl = starterLiterate.Get()
	}

	if err := writeStarter(target, tmpl, name); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	fmt.Printf("created %s\n", target)
	return nil
}

func initInteractive(ctx context.Context, target, name string, literate bool) (string, string, bool, error) {
	if target == "" {
		target = "scratch"
	}
	format := "rpn"
	if literate {
		format = "md"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target file").
				Description("Extension is added from the format if missing").
				Value(&target),
			huh.NewInput().
				Title("Program name").
				Description("Defaults to the file name").
				Value(&name),
			huh.NewSelect[string]().
				Title("Format").
				Options(
					huh.NewOption("plain (.rpn)", "rpn"),
					huh.NewOption("literate markdown (.md)", "md"),
				).
				Value(&format),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return "", "", false, err
	}

	return target, name, format == "md", nil
}

func writeStarter(target string, tmpl *template.Template, name string) error {
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return fileutils.AtomicWrite(target, func(w io.Writer) error {
		return tmpl.Execute(w, struct{ Name string }{Name: name})
	})
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}
