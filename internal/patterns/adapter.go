package patterns

import (
	"context"
	"fmt"
	"io"
)

// Target is the interface callers expect to work with.
type Target interface {
	Request() string
}

// Adaptee exposes a useful behavior behind the wrong interface shape.
type Adaptee struct{}

// SpecificRequest is the adaptee's incompatible entry point.
func (a *Adaptee) SpecificRequest() string {
	return "Adaptee's specific request."
}

// Adapter wraps an Adaptee behind the Target interface, delegating
// Request to SpecificRequest unchanged.
type Adapter struct {
	adaptee *Adaptee
}

// NewAdapter wraps adaptee so it satisfies Target.
func NewAdapter(adaptee *Adaptee) *Adapter {
	return &Adapter{adaptee: adaptee}
}

// Request delegates to the wrapped adaptee.
func (a *Adapter) Request() string {
	return a.adaptee.SpecificRequest()
}

// DemoAdapter routes a call through the adapter and checks the output
// matches the adaptee's raw behavior verbatim.
func DemoAdapter(ctx context.Context, w io.Writer) error {
	adaptee := &Adaptee{}

	var target Target = NewAdapter(adaptee)
	adapted := target.Request()
	raw := adaptee.SpecificRequest()

	fmt.Fprintf(w, "adaptee: %s\n", raw)
	fmt.Fprintf(w, "adapter: %s\n", adapted)

	if adapted != raw {
		return fmt.Errorf("adapter changed the adaptee's behavior: %q != %q", adapted, raw)
	}
	return nil
}
