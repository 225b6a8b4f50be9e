// Package scaffold is the generation engine: it maps catalog entries onto
// destination directories and renders the fixed artifact set for each one.
package scaffold

import (
	"path/filepath"
	"strings"
)

// Destination is the derived output location for one catalog entry.
type Destination struct {
	// Dir is the filesystem directory that receives the entry's artifacts:
	// root joined with each category segment, then the identifier.
	Dir string

	// Namespace is the C# namespace token: category segments joined with
	// ".", then the identifier.
	Namespace string
}

// Resolve computes the destination for an entry. Pure and deterministic:
// identical inputs always produce identical destinations. Malformed
// identifiers are a precondition violated upstream by catalog validation,
// not a failure mode here.
func Resolve(root string, category []string, identifier string) Destination {
	parts := make([]string, 0, len(category)+2)
	parts = append(parts, root)
	parts = append(parts, category...)
	parts = append(parts, identifier)

	return Destination{
		Dir:       filepath.Join(parts...),
		Namespace: strings.Join(append(append([]string{}, category...), identifier), "."),
	}
}
