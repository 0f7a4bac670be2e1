// Package events carries evaluation trace events from the machine to
// whoever wants them: a collector, a logger, the REPL transcript.
package events

type Level uint8

const (
	Debug Level = iota
	Info
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "D"
	case Info:
		return "I"
	case Error:
		return "E"
	default:
		return "X"
	}
}

// Event is a single trace entry. Word is the word being evaluated when
// the event was emitted, if any.
type Event struct {
	Level   Level
	Word    string
	Message string
	Error   error
}

type Handler interface {
	Handle(event Event)
}
