package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/papapumpkin/pulsar/internal/catalog"
)

// Reporter receives run progress for observability surfaces (console,
// telemetry). Implementations must not influence the run: this is an
// output-only contract and nothing parses it programmatically.
type Reporter interface {
	// EntryOutcome is called once per entry, immediately after its outcome
	// is finalized.
	EntryOutcome(o Outcome)
	// CategoryDone is called after the last entry of a category group.
	CategoryDone(category []string, generated, skipped, failed int)
	// RunDone is called once with the immutable summary.
	RunDone(s *Summary)
}

// Runner orchestrates one full pass over a catalog. Processing is
// single-threaded and synchronous: one entry is fully processed before the
// next begins, and the only shared state is the Summary the runner owns for
// the duration of the run. Reruns against the same root are safe for a
// single runner only; two simultaneous runs could both pass the gate and
// double-write.
type Runner struct {
	// Root is the output directory under which all entries materialize.
	Root string
	// Threshold is the completeness gate file-count threshold.
	Threshold int
	// Force bypasses the completeness gate, regenerating every entry.
	Force bool
	// DryRun renders every artifact but writes nothing.
	DryRun bool
	// Writer performs the file writes.
	Writer Writer
	// Reporters observe progress. A nil or empty slice is valid.
	Reporters []Reporter
}

// Run processes every category and entry in catalog-declaration order and
// returns the run summary. A single entry's failure never halts the run;
// the caller decides the process exit from Summary.Failed.
func (r *Runner) Run(cat *catalog.Catalog) *Summary {
	threshold := r.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	summary := &Summary{}
	for _, group := range cat.Categories {
		var generated, skipped, failed int
		for _, e := range group.Entries {
			o := r.processEntry(group.Segments, e, threshold)
			summary.record(o)
			switch o.State {
			case StateGenerated:
				generated++
			case StateSkipped:
				skipped++
			case StateFailed:
				failed++
			}
			for _, rep := range r.Reporters {
				rep.EntryOutcome(o)
			}
		}
		for _, rep := range r.Reporters {
			rep.CategoryDone(group.Segments, generated, skipped, failed)
		}
	}

	for _, rep := range r.Reporters {
		rep.RunDone(summary)
	}
	return summary
}

// processEntry takes one entry through resolve, gate, render, and write,
// and finalizes its outcome exactly once. All errors are caught here; none
// escape to terminate the run.
func (r *Runner) processEntry(category []string, e catalog.Entry, threshold int) Outcome {
	o := Outcome{Identifier: e.Identifier, Category: category}

	dest := Resolve(r.Root, category, e.Identifier)

	if !r.Force {
		skip, err := ShouldSkip(dest.Dir, threshold)
		if err != nil {
			o.State = StateFailed
			o.Err = err
			return o
		}
		if skip {
			o.State = StateSkipped
			o.Reason = fmt.Sprintf("destination holds >= %d files", threshold)
			return o
		}
	}

	// Render the entire artifact set in memory before touching disk, so a
	// template failure never leaves a half-generated directory.
	artifacts, err := RenderAll(e, category, dest)
	if err != nil {
		o.State = StateFailed
		o.Err = err
		return o
	}

	if r.DryRun {
		o.State = StateGenerated
		o.Artifacts = len(artifacts)
		return o
	}

	for _, a := range artifacts {
		if err := r.Writer.Write(filepath.Join(dest.Dir, a.Filename), a.Content); err != nil {
			// Earlier artifacts for this entry may remain on disk; a rerun
			// re-evaluates the gate and regenerates.
			o.State = StateFailed
			o.Err = err
			return o
		}
	}

	o.State = StateGenerated
	o.Artifacts = len(artifacts)
	return o
}
