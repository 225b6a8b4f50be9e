package scaffold

// OutcomeState classifies the terminal state of one entry.
type OutcomeState string

const (
	// StateGenerated means the full artifact set was written.
	StateGenerated OutcomeState = "generated"
	// StateSkipped means the completeness gate left the destination alone.
	StateSkipped OutcomeState = "skipped"
	// StateFailed means rendering or writing failed; the run continued.
	StateFailed OutcomeState = "failed"
)

// Outcome is the finalized result of processing one entry. It is created
// when the entry finishes and never mutated afterwards.
type Outcome struct {
	Identifier string
	Category   []string
	State      OutcomeState
	Artifacts  int    // written artifact count when State == StateGenerated
	Reason     string // human reason when State == StateSkipped
	Err        error  // underlying cause when State == StateFailed
}

// Summary aggregates all outcomes of one run. It is immutable once the
// runner returns it.
type Summary struct {
	Generated int
	Skipped   int
	Failed    int
	Total     int
	Outcomes  []Outcome
}

// record folds one finalized outcome into the summary.
func (s *Summary) record(o Outcome) {
	switch o.State {
	case StateGenerated:
		s.Generated++
	case StateSkipped:
		s.Skipped++
	case StateFailed:
		s.Failed++
	}
	s.Total++
	s.Outcomes = append(s.Outcomes, o)
}
