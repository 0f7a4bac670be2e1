package repl_ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olimci/fuhen/pkg/machine"
	"github.com/olimci/fuhen/pkg/stack"
)

const transcriptTail = 12

type Params struct {
	Prompt       string
	HistoryLimit int
	Precision    int
}

type Model struct {
	machine   *machine.Machine
	input     textinput.Model
	precision int

	transcript []string
	styles     uiStyles
	quitting   bool
}

func Run(ctx context.Context, params Params) error {
	program := tea.NewProgram(NewModel(params), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func NewModel(params Params) *Model {
	input := textinput.New()
	input.Prompt = params.Prompt
	input.Placeholder = "words, e.g. 2 3 +"
	input.Focus()
	applyTextInputStyles(&input)

	return &Model{
		machine:   machine.New(machine.WithHistoryLimit(params.HistoryLimit)),
		input:     input,
		precision: params.Precision,
		styles:    initStyles(),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+z":
			m.undo()
			return m, nil
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return nil
	}

	switch line {
	case "quit", "exit":
		m.quitting = true
		return tea.Quit
	case "undo":
		m.undo()
		return nil
	case "reset":
		m.machine.Reset()
		m.say("reset")
		return nil
	}

	if err := m.machine.Eval(strings.Fields(line)); err != nil {
		m.transcript = append(m.transcript, m.styles.errLine.Render("✗ "+err.Error()))
		return nil
	}
	m.transcript = append(m.transcript,
		m.styles.inputLine.Render(line)+m.styles.resultLine.Render(" → "+m.renderStack()))
	return nil
}

func (m *Model) undo() {
	if m.machine.Undo() {
		m.say("undo → " + m.renderStack())
		return
	}
	m.say("nothing to undo")
}

func (m *Model) say(text string) {
	m.transcript = append(m.transcript, m.styles.noteLine.Render(text))
}

func (m *Model) renderStack() string {
	if m.machine.Stack().IsEmpty() {
		return "(empty)"
	}

	parts := make([]string, 0, m.machine.Depth())
	for v := range m.machine.Stack().All() {
		parts = append(parts, formatValue(v, m.precision))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatValue(v float64, precision int) string {
	if precision <= 0 {
		precision = -1
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("fuhen") + "\n\n")

	tail := m.transcript
	if len(tail) > transcriptTail {
		tail = tail[len(tail)-transcriptTail:]
	}
	for _, line := range tail {
		b.WriteString(line + "\n")
	}
	if len(tail) > 0 {
		b.WriteString("\n")
	}

	status := stack.MatchPeek(m.machine.Stack(),
		func(v float64) string {
			return fmt.Sprintf("stack %s  depth %d", m.renderStack(), m.machine.Depth())
		},
		func() string { return "stack (empty)" })
	b.WriteString(m.styles.stackLine.Render(status) + "\n")

	b.WriteString(m.input.View() + "\n")
	b.WriteString(m.styles.help.Render("enter: eval · ctrl+z: undo · reset: start over · ctrl+c: quit") + "\n")
	return b.String()
}
