package telemetry

import (
	"strings"

	"github.com/papapumpkin/pulsar/internal/scaffold"
)

// Reporter adapts an Emitter to the runner's Reporter contract, recording
// one event per entry outcome, per category, and per run.
type Reporter struct {
	Emitter *Emitter
}

// EntryOutcome records the outcome of one entry.
func (r *Reporter) EntryOutcome(o scaffold.Outcome) {
	evt := Event{
		Category: strings.Join(o.Category, "/"),
		Entry:    o.Identifier,
	}
	switch o.State {
	case scaffold.StateGenerated:
		evt.Kind = KindEntryGenerated
		evt.Data = map[string]any{"artifacts": o.Artifacts}
	case scaffold.StateSkipped:
		evt.Kind = KindEntrySkipped
		evt.Data = map[string]any{"reason": o.Reason}
	case scaffold.StateFailed:
		evt.Kind = KindEntryFailed
		if o.Err != nil {
			evt.Data = map[string]any{"error": o.Err.Error()}
		}
	}
	_ = r.Emitter.Emit(evt)
}

// CategoryDone records the per-category counts.
func (r *Reporter) CategoryDone(category []string, generated, skipped, failed int) {
	_ = r.Emitter.Emit(Event{
		Kind:     KindCategoryDone,
		Category: strings.Join(category, "/"),
		Data: map[string]any{
			"generated": generated,
			"skipped":   skipped,
			"failed":    failed,
		},
	})
}

// RunDone records the final summary.
func (r *Reporter) RunDone(s *scaffold.Summary) {
	_ = r.Emitter.Emit(Event{
		Kind: KindRunDone,
		Data: map[string]any{
			"generated": s.Generated,
			"skipped":   s.Skipped,
			"failed":    s.Failed,
			"total":     s.Total,
		},
	})
}
