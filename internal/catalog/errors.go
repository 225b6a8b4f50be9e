package catalog

import "errors"

// Sentinel errors for catalog merge and validation.
var (
	// ErrDuplicateEntry indicates two catalogs (or one catalog twice) define
	// the same identifier under the same category path.
	ErrDuplicateEntry = errors.New("duplicate entry for destination")
	// ErrBadIdentifier indicates an identifier that cannot be used as a path
	// segment or as a token inside generated source text.
	ErrBadIdentifier = errors.New("malformed identifier")
	// ErrMissingField indicates a required field (identifier, description,
	// category segment) is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrEmptyCatalog indicates a catalog with no entries at all.
	ErrEmptyCatalog = errors.New("catalog has no entries")
)

// ValidationError records a structural catalog problem with source context.
// Any ValidationError is fatal to the whole run: validation happens before
// the orchestrator executes, so no output is written.
type ValidationError struct {
	Catalog    string // catalog name, or source file for loaded catalogs
	Category   string // joined category path, if known
	Identifier string // offending entry identifier, if known
	Err        error
}

// Error returns a human-readable string including catalog and entry context.
func (e *ValidationError) Error() string {
	s := e.Catalog
	if e.Category != "" {
		s += ": " + e.Category
	}
	if e.Identifier != "" {
		s += "/" + e.Identifier
	}
	return s + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
