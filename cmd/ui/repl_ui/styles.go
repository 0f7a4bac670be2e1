package repl_ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

type uiStyles struct {
	title      lipgloss.Style
	inputLine  lipgloss.Style
	resultLine lipgloss.Style
	errLine    lipgloss.Style
	noteLine   lipgloss.Style
	stackLine  lipgloss.Style
	help       lipgloss.Style
}

func initStyles() uiStyles {
	colors := catppuccinMocha()
	return uiStyles{
		title:      lipgloss.NewStyle().Bold(true).Foreground(colors.accent),
		inputLine:  lipgloss.NewStyle().Foreground(colors.subtext),
		resultLine: lipgloss.NewStyle().Foreground(colors.text),
		errLine:    lipgloss.NewStyle().Foreground(colors.red),
		noteLine:   lipgloss.NewStyle().Foreground(colors.muted),
		stackLine:  lipgloss.NewStyle().Bold(true).Foreground(colors.green),
		help:       lipgloss.NewStyle().Foreground(colors.muted),
	}
}

type uiColors struct {
	text    lipgloss.Color
	subtext lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	input   lipgloss.Color
	green   lipgloss.Color
	red     lipgloss.Color
}

func catppuccinMocha() uiColors {
	return uiColors{
		text:    lipgloss.Color("#cdd6f4"),
		subtext: lipgloss.Color("#bac2de"),
		muted:   lipgloss.Color("#a6adc8"),
		accent:  lipgloss.Color("#cba6f7"),
		input:   lipgloss.Color("#89b4fa"),
		green:   lipgloss.Color("#a6e3a1"),
		red:     lipgloss.Color("#f38ba8"),
	}
}

func applyTextInputStyles(input *textinput.Model) {
	colors := catppuccinMocha()
	input.TextStyle = lipgloss.NewStyle().Foreground(colors.input)
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(colors.muted)
	input.PromptStyle = lipgloss.NewStyle().Foreground(colors.subtext)
	input.CursorStyle = lipgloss.NewStyle().Foreground(colors.input)
}
