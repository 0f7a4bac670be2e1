// Package machine implements a small RPN stack machine on top of
// persistent stacks. Every word derives a new stack value and the prior
// handles are retained, so undo is a handle swap rather than a copy.
package machine

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/olimci/fuhen/pkg/events"
	"github.com/olimci/fuhen/pkg/stack"
)

var (
	ErrUnderflow    = errors.New("machine: stack underflow")
	ErrUnknownWord  = errors.New("machine: unknown word")
	ErrDivideByZero = errors.New("machine: divide by zero")
)

type Machine struct {
	current stack.Stack[float64]
	history []stack.Stack[float64]
	vars    map[string]float64
	handler events.Handler
	limit   int
}

type Option func(*Machine)

// WithHandler sets the trace event handler.
func WithHandler(h events.Handler) Option {
	return func(m *Machine) {
		if h != nil {
			m.handler = h
		}
	}
}

// WithStack sets the initial stack.
func WithStack(s stack.Stack[float64]) Option {
	return func(m *Machine) {
		m.current = s
	}
}

// WithVars preloads named values.
func WithVars(vars map[string]float64) Option {
	return func(m *Machine) {
		maps.Copy(m.vars, vars)
	}
}

// WithHistoryLimit caps the undo history; 0 means unlimited.
func WithHistoryLimit(n int) Option {
	return func(m *Machine) {
		if n < 0 {
			panic("history limit must be >= 0")
		}
		m.limit = n
	}
}

func New(opts ...Option) *Machine {
	m := &Machine{
		vars:    make(map[string]float64),
		handler: events.NewNoopHandler(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Stack returns the current stack. The returned value is immutable, so
// callers may hold it across further evaluation.
func (m *Machine) Stack() stack.Stack[float64] {
	return m.current
}

// Depth returns the number of elements on the current stack.
func (m *Machine) Depth() int {
	return m.current.Len()
}

// Vars returns a copy of the machine's named values.
func (m *Machine) Vars() map[string]float64 {
	return maps.Clone(m.vars)
}

// Eval evaluates words left to right, stopping at the first error. Each
// word snapshots the stack first, so Undo steps back one word at a time.
func (m *Machine) Eval(words []string) error {
	for _, w := range words {
		if err := m.EvalWord(w); err != nil {
			return err
		}
	}
	return nil
}

// EvalWord evaluates a single word: a number literal, a builtin, a
// `!name` store or a variable recall.
func (m *Machine) EvalWord(word string) error {
	next, err := m.apply(word)
	if err != nil {
		m.emit(events.Error, word, "evaluation failed", err)
		return err
	}

	m.snapshot()
	m.current = next
	m.emit(events.Debug, word, next.String(), nil)
	return nil
}

func (m *Machine) apply(word string) (stack.Stack[float64], error) {
	if n, err := strconv.ParseFloat(word, 64); err == nil {
		return m.current.Push(n), nil
	}

	if name, ok := strings.CutPrefix(word, "!"); ok && name != "" {
		rest, v, ok := m.current.TryPop()
		if !ok {
			return m.current, fmt.Errorf("%w: !%s needs a value", ErrUnderflow, name)
		}
		m.vars[name] = v
		return rest, nil
	}

	if fn, ok := builtins.Get()[word]; ok {
		next, err := fn(m.current)
		if err != nil {
			return m.current, fmt.Errorf("%q: %w", word, err)
		}
		return next, nil
	}

	if v, ok := m.vars[word]; ok {
		return m.current.Push(v), nil
	}

	return m.current, fmt.Errorf("%w: %q", ErrUnknownWord, word)
}

// Undo restores the stack as it was before the last word. Named values
// are not restored. Reports whether there was anything to undo.
func (m *Machine) Undo() bool {
	if len(m.history) == 0 {
		return false
	}
	m.current = m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return true
}

// Reset clears the stack, the history and the named values.
func (m *Machine) Reset() {
	m.current = stack.Empty[float64]()
	m.history = nil
	clear(m.vars)
}

func (m *Machine) snapshot() {
	m.history = append(m.history, m.current)
	if m.limit > 0 && len(m.history) > m.limit {
		m.history = m.history[len(m.history)-m.limit:]
	}
}

func (m *Machine) emit(level events.Level, word, message string, err error) {
	m.handler.Handle(events.Event{
		Level:   level,
		Word:    word,
		Message: message,
		Error:   err,
	})
}
