// Package runner executes batches of pattern demos and reports results.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/simonhull/lyrebird/internal/catalog"
)

// Options configures a batch run.
type Options struct {
	Writer     io.Writer // Where to write the report (defaults to os.Stdout)
	ShowOutput bool      // Print each demo's captured output lines
	Spinner    bool      // Show a spinner while the batch runs
	Skip       []string  // Demo names excluded from "all" runs
}

// Summary aggregates the results of one batch.
type Summary struct {
	Results []*catalog.Result
	Failed  int
}

// Succeeded reports whether every demo in the batch succeeded.
func (s *Summary) Succeeded() bool {
	return s.Failed == 0
}

// Run executes the requested demo names against reg, in the given
// order, and writes a report. An empty names slice means every
// registered demo in registration order, minus the skip list.
// A missing name aborts the batch with catalog.ErrNotFound; demo
// failures are reported per demo and aggregated into the summary.
func Run(ctx context.Context, reg *catalog.Registry, names []string, opts Options) (*Summary, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	if len(names) == 0 {
		for _, name := range reg.Names() {
			if slices.Contains(opts.Skip, name) {
				continue
			}
			names = append(names, name)
		}
	}

	summary := &Summary{}
	execute := func() error {
		for _, name := range names {
			res, err := reg.Run(ctx, name)
			if err != nil {
				return err
			}
			summary.Results = append(summary.Results, res)
			if !res.Succeeded() {
				summary.Failed++
			}
		}
		return nil
	}

	var err error
	if opts.Spinner {
		message := fmt.Sprintf("Running %d demo(s)", len(names))
		err = withSpinner(message, execute)
	} else {
		err = execute()
	}
	if err != nil {
		return summary, err
	}

	for _, res := range summary.Results {
		report(opts.Writer, res, opts.ShowOutput)
	}
	return summary, nil
}

// report writes one demo's summary line, and optionally its captured
// output lines.
func report(w io.Writer, res *catalog.Result, showOutput bool) {
	if res.Succeeded() {
		fmt.Fprintf(w, "✓ %s (%s)\n", res.Descriptor.Name, res.Duration.Round(time.Microsecond))
	} else {
		fmt.Fprintf(w, "✗ %s: %v\n", res.Descriptor.Name, res.Err)
	}

	if showOutput {
		for _, line := range res.Output {
			fmt.Fprintf(w, "   %s\n", line)
		}
	}
}
