package patterns

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Singleton is the shared instance the holder hands out.
type Singleton struct {
	label string
}

// Label returns the instance's identifying label.
func (s *Singleton) Label() string {
	return s.label
}

// Holder owns a lazily-initialized Singleton. Construction happens on
// the first Instance call; every later call (including concurrent
// ones) returns the same instance. Passing the holder explicitly
// avoids ambient package-level state.
type Holder struct {
	once          sync.Once
	instance      *Singleton
	constructions atomic.Int64
}

// NewHolder creates a holder with no instance constructed yet.
func NewHolder() *Holder {
	return &Holder{}
}

// Instance returns the shared Singleton, constructing it exactly once.
func (h *Holder) Instance() *Singleton {
	h.once.Do(func() {
		h.constructions.Add(1)
		h.instance = &Singleton{label: "the one instance"}
	})
	return h.instance
}

// Constructions returns how many times the instance was constructed.
func (h *Holder) Constructions() int64 {
	return h.constructions.Load()
}

// DemoSingleton exercises the singleton contract: two accesses yield
// the same identity and exactly one construction, including under
// concurrent first access.
func DemoSingleton(ctx context.Context, w io.Writer) error {
	holder := NewHolder()

	// Race several first-time accesses against each other.
	const accessors = 8
	instances := make([]*Singleton, accessors)
	var wg sync.WaitGroup
	for i := 0; i < accessors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = holder.Instance()
		}(i)
	}
	wg.Wait()

	first := holder.Instance()
	second := holder.Instance()

	same := first == second
	for _, inst := range instances {
		if inst != first {
			same = false
		}
	}

	fmt.Fprintf(w, "constructed %d time(s) across %d accesses\n", holder.Constructions(), accessors+2)
	fmt.Fprintf(w, "same instance: %t\n", same)

	if !same || holder.Constructions() != 1 {
		return fmt.Errorf("singleton contract violated: %d constructions", holder.Constructions())
	}
	return nil
}
