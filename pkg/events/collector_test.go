package events

import (
	"errors"
	"testing"
)

func TestCollector(t *testing.T) {
	var forwarded []Event
	c := NewCollector(NewHandlerFunc(func(event Event) {
		forwarded = append(forwarded, event)
	}))

	c.Handle(Event{Level: Debug, Word: "1", Message: "push"})
	c.Handle(Event{Level: Debug, Word: "dup", Message: "apply"})
	c.Handle(Event{Level: Error, Word: "/", Error: errors.New("divide by zero")})

	if len(forwarded) != 3 {
		t.Errorf("forwarded %d events, want 3", len(forwarded))
	}
	if !c.HasLevel(Error) {
		t.Error("HasLevel(Error) = false")
	}
	if got := len(c.AtLevel(Error)); got != 1 {
		t.Errorf("AtLevel(Error) has %d events, want 1", got)
	}

	s := c.Summary()
	if s.Words != 3 || s.ErrorCount != 1 || len(s.Errors) != 1 {
		t.Errorf("Summary = {Words:%d ErrorCount:%d}, want {3 1}", s.Words, s.ErrorCount)
	}

	c.Clear()
	if len(c.Events) != 0 {
		t.Errorf("Events after Clear = %d, want 0", len(c.Events))
	}
}
