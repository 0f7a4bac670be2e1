package events

import "github.com/charmbracelet/log"

func NewHandlerFunc(handle func(event Event)) HandlerFunc {
	return HandlerFunc{
		handle: handle,
	}
}

type HandlerFunc struct {
	handle func(event Event)
}

func (h HandlerFunc) Handle(event Event) {
	h.handle(event)
}

func NewNoopHandler() *NoopHandler {
	return &NoopHandler{}
}

type NoopHandler struct{}

func (h *NoopHandler) Handle(event Event) {}

// NewLogHandler forwards events to logger at the matching level.
func NewLogHandler(logger *log.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

type LogHandler struct {
	logger *log.Logger
}

func (h *LogHandler) Handle(event Event) {
	args := make([]any, 0, 4)
	if event.Word != "" {
		args = append(args, "word", event.Word)
	}
	if event.Error != nil {
		args = append(args, "err", event.Error)
	}

	switch event.Level {
	case Debug:
		h.logger.Debug(event.Message, args...)
	case Error:
		h.logger.Error(event.Message, args...)
	default:
		h.logger.Info(event.Message, args...)
	}
}
