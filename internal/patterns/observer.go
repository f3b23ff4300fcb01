package patterns

import (
	"context"
	"fmt"
	"io"
)

// Observer receives state changes from a Subject.
type Observer interface {
	Update(state string)
}

// Subject holds an ordered collection of observers and notifies them
// of every state change in attachment order. Notification is a
// synchronous iteration; no reentrancy guarantees are made.
type Subject struct {
	observers []Observer
	state     string
}

// NewSubject creates a subject with no observers and empty state.
func NewSubject() *Subject {
	return &Subject{}
}

// Attach adds an observer. Duplicate attachments are allowed: an
// observer attached twice is notified twice per state change, and
// each Detach removes a single attachment.
func (s *Subject) Attach(o Observer) {
	s.observers = append(s.observers, o)
}

// Detach removes the first attachment of o, matched by reference
// identity. Detaching an observer that is not attached is a no-op.
func (s *Subject) Detach(o Observer) {
	for i, attached := range s.observers {
		if attached == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// SetState updates the subject's state and notifies every attached
// observer, in attachment order, with the new value.
func (s *Subject) SetState(state string) {
	s.state = state
	for _, o := range s.observers {
		o.Update(state)
	}
}

// State returns the subject's current state.
func (s *Subject) State() string {
	return s.state
}

// loggingObserver records each received state as an output line.
type loggingObserver struct {
	name string
	w    io.Writer
}

func (o *loggingObserver) Update(state string) {
	fmt.Fprintf(o.w, "observer %s received %q\n", o.name, state)
}

// DemoObserver attaches two observers, changes state, detaches one,
// and changes state again, showing ordered fan-out and exclusion
// after detach.
func DemoObserver(ctx context.Context, w io.Writer) error {
	subject := NewSubject()
	first := &loggingObserver{name: "A", w: w}
	second := &loggingObserver{name: "B", w: w}

	subject.Attach(first)
	subject.Attach(second)
	subject.SetState("X")

	subject.Detach(first)
	subject.SetState("Y")

	if subject.State() != "Y" {
		return fmt.Errorf("subject state is %q, expected %q", subject.State(), "Y")
	}
	return nil
}
