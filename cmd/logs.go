package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/olimci/fuhen/pkg/events"
)

type traceOutputStyle int

const (
	tracePlain traceOutputStyle = iota
	traceRich
)

type tracePrinter struct {
	style traceOutputStyle
	out   io.Writer
	mu    sync.Mutex

	levelStyles map[events.Level]lipgloss.Style
	wordStyle   lipgloss.Style
	msgStyle    lipgloss.Style
}

func newTracePrinter(out io.Writer) *tracePrinter {
	p := &tracePrinter{
		style: tracePlain,
		out:   out,
	}

	colorEnabled := false
	if f, ok := out.(*os.File); ok {
		colorEnabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if !colorEnabled {
		return p
	}

	p.style = traceRich
	p.levelStyles = map[events.Level]lipgloss.Style{
		events.Debug: lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")), // muted
		events.Info:  lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")), // blue
		events.Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")), // red
	}
	p.wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")) // grey
	p.msgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")) // text
	return p
}

func (p *tracePrinter) Print(e events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := formatTracePlain(e)
	if p.style == traceRich && p.levelStyles != nil {
		if levelStyle, ok := p.levelStyles[e.Level]; ok {
			line = formatTraceRich(e, levelStyle.Render(e.Level.String()), p.wordStyle, p.msgStyle)
		}
	}

	fmt.Fprintln(p.out, line)
}

func formatTracePlain(e events.Event) string {
	var b strings.Builder

	b.WriteString(e.Level.String())
	if e.Word != "" {
		b.WriteString(" [")
		b.WriteString(e.Word)
		b.WriteString("]")
	}
	b.WriteString(": ")

	b.WriteString(e.Message)
	if e.Error != nil {
		b.WriteString(": ")
		b.WriteString(e.Error.Error())
	}

	return b.String()
}

func formatTraceRich(e events.Event, levelToken string, wordStyle, msgStyle lipgloss.Style) string {
	var b strings.Builder

	b.WriteString(levelToken)
	if e.Word != "" {
		b.WriteString(" ")
		b.WriteString(wordStyle.Render("[" + e.Word + "]"))
	}
	b.WriteString(": ")

	b.WriteString(msgStyle.Render(e.Message))
	if e.Error != nil {
		b.WriteString(": ")
		b.WriteString(e.Error.Error())
	}

	return b.String()
}
