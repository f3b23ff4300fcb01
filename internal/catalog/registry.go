package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/simonhull/lyrebird/internal/output"
)

// ErrNotFound is returned when a requested pattern name is not registered.
var ErrNotFound = errors.New("pattern not found")

// ErrDuplicate is returned when a registration collides with an existing name.
var ErrDuplicate = errors.New("pattern already registered")

// entry pairs a descriptor with its demo entry point.
type entry struct {
	desc Descriptor
	demo DemoFunc
}

// Registry maps pattern names to their demo entry points. Entries are
// added at process start and are read-only afterwards. Listing and
// batch runs follow registration order.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
	order   []string
}

// defaultRegistry is the registry instance the package-level functions use.
var defaultRegistry = NewRegistry()

// Register adds a demo to the default registry.
func Register(desc Descriptor, demo DemoFunc) error {
	return defaultRegistry.Register(desc, demo)
}

// Get retrieves a descriptor from the default registry.
func Get(name string) (Descriptor, bool) {
	return defaultRegistry.Get(name)
}

// List returns every descriptor in the default registry in registration order.
func List() []Descriptor {
	return defaultRegistry.List()
}

// Run executes a demo from the default registry.
func Run(ctx context.Context, name string) (*Result, error) {
	return defaultRegistry.Run(ctx, name)
}

// Reset clears the default registry (useful for testing).
func Reset() {
	defaultRegistry = NewRegistry()
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// Register adds a demo under its descriptor's name. Registration fails
// for empty names, nil demos, invalid categories, and name collisions.
func (r *Registry) Register(desc Descriptor, demo DemoFunc) error {
	if desc.Name == "" {
		return fmt.Errorf("cannot register pattern with empty name")
	}
	if demo == nil {
		return fmt.Errorf("cannot register nil demo for pattern '%s'", desc.Name)
	}
	if _, err := ParseCategory(string(desc.Category)); err != nil {
		return fmt.Errorf("cannot register pattern '%s': %w", desc.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[desc.Name]; exists {
		return fmt.Errorf("pattern '%s': %w", desc.Name, ErrDuplicate)
	}

	r.entries[desc.Name] = entry{desc: desc, demo: demo}
	r.order = append(r.order, desc.Name)
	return nil
}

// Get retrieves the descriptor registered under name.
func (r *Registry) Get(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	return e.desc, ok
}

// List returns all registered descriptors in registration order.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descs := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		descs = append(descs, r.entries[name].desc)
	}
	return descs
}

// Names returns all registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Run resolves name and invokes its demo, capturing output line by
// line into a Result. A missing name fails with ErrNotFound. A demo
// failure is recorded in the Result rather than returned, so callers
// can still report the lines written before the failure.
func (r *Registry) Run(ctx context.Context, name string) (*Result, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("pattern '%s': %w", name, ErrNotFound)
	}

	rec := output.NewLineRecorder()
	start := time.Now()
	err := e.demo(ctx, rec)
	rec.Flush()

	return &Result{
		Descriptor: e.desc,
		Output:     rec.Lines(),
		Err:        err,
		Duration:   time.Since(start),
	}, nil
}

// RunAll executes every registered demo in registration order and
// returns one Result per demo.
func (r *Registry) RunAll(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, 0, len(r.Names()))
	for _, name := range r.Names() {
		res, err := r.Run(ctx, name)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
