package patterns

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"testing"
)

// recordingObserver records every state it receives, tagged with its name.
type recordingObserver struct {
	name     string
	received *[]string
}

func (o *recordingObserver) Update(state string) {
	*o.received = append(*o.received, fmt.Sprintf("%s:%s", o.name, state))
}

func TestSubjectNotifiesInAttachOrder(t *testing.T) {
	subject := NewSubject()
	var received []string
	first := &recordingObserver{name: "O1", received: &received}
	second := &recordingObserver{name: "O2", received: &received}

	subject.Attach(first)
	subject.Attach(second)
	subject.SetState("X")

	want := []string{"O1:X", "O2:X"}
	if !reflect.DeepEqual(received, want) {
		t.Fatalf("after SetState(X): received %v, want %v", received, want)
	}

	subject.Detach(first)
	subject.SetState("Y")

	want = []string{"O1:X", "O2:X", "O2:Y"}
	if !reflect.DeepEqual(received, want) {
		t.Fatalf("after Detach(O1) and SetState(Y): received %v, want %v", received, want)
	}
}

func TestSubjectDetachByIdentity(t *testing.T) {
	subject := NewSubject()
	var received []string

	// Two distinct observers with identical contents; only the
	// detached reference must be removed.
	first := &recordingObserver{name: "twin", received: &received}
	second := &recordingObserver{name: "twin", received: &received}

	subject.Attach(first)
	subject.Attach(second)
	subject.Detach(first)
	subject.SetState("X")

	if len(received) != 1 {
		t.Fatalf("received %v, want exactly one notification", received)
	}
}

func TestSubjectDuplicateAttach(t *testing.T) {
	subject := NewSubject()
	var received []string
	o := &recordingObserver{name: "O", received: &received}

	subject.Attach(o)
	subject.Attach(o)
	subject.SetState("X")

	if len(received) != 2 {
		t.Fatalf("duplicate attachment should notify twice, got %v", received)
	}

	// One Detach removes a single attachment.
	subject.Detach(o)
	subject.SetState("Y")

	if len(received) != 3 {
		t.Fatalf("after one detach, one attachment should remain, got %v", received)
	}
}

func TestSubjectDetachUnknownObserver(t *testing.T) {
	subject := NewSubject()
	var received []string
	attached := &recordingObserver{name: "O", received: &received}
	stranger := &recordingObserver{name: "S", received: &received}

	subject.Attach(attached)
	subject.Detach(stranger)
	subject.SetState("X")

	if len(received) != 1 {
		t.Fatalf("detaching an unattached observer must be a no-op, got %v", received)
	}
}

func TestDemoObserver(t *testing.T) {
	var buf bytes.Buffer
	if err := DemoObserver(context.Background(), &buf); err != nil {
		t.Fatalf("DemoObserver failed: %v", err)
	}

	want := `observer A received "X"
observer B received "X"
observer B received "Y"
`
	if buf.String() != want {
		t.Errorf("DemoObserver output = %q, want %q", buf.String(), want)
	}
}
