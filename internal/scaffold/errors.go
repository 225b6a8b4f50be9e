package scaffold

import "errors"

// Sentinel errors for the generation engine.
var (
	// ErrMissingField indicates a template was invoked with an entry lacking
	// a field it requires. This is a precondition defect in the catalog, not
	// a condition to retry.
	ErrMissingField = errors.New("entry is missing a required field")
	// ErrUnknownKind indicates an artifact kind outside the fixed set.
	ErrUnknownKind = errors.New("unknown artifact kind")
)
