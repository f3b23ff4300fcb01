// Package catalog holds the pattern registry: descriptors, demo entry
// points, and the results of demo runs.
package catalog

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Category classifies a pattern by the classic taxonomy.
type Category string

const (
	Creational Category = "creational"
	Structural Category = "structural"
	Behavioral Category = "behavioral"
)

// ParseCategory converts a string to a Category.
// Returns an error for anything outside the fixed set.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Creational, Structural, Behavioral:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category %q (expected creational, structural, or behavioral)", s)
	}
}

// String returns the display form of the category.
func (c Category) String() string {
	return string(c)
}

// Descriptor is the static metadata identifying one pattern demo.
// Descriptors are immutable once registered.
type Descriptor struct {
	Name        string   `yaml:"name"`
	Category    Category `yaml:"category"`
	Description string   `yaml:"description"`
}

// DemoFunc runs one pattern demonstration, writing its observable
// output lines to w. A non-nil error marks the run as failed.
type DemoFunc func(ctx context.Context, w io.Writer) error

// Result captures one demo run for reporting. It is created per run
// and discarded after the runner reports it.
type Result struct {
	Descriptor Descriptor
	Output     []string
	Err        error
	Duration   time.Duration
}

// Succeeded reports whether the demo ran without error.
func (r *Result) Succeeded() bool {
	return r.Err == nil
}
