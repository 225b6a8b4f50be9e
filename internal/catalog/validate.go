package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// identifierPattern is the set of identifiers usable unmodified as a
// filesystem path stem and as a token inside generated C# source.
var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// segmentPattern constrains category segments the same way; segments also
// become C# namespace components.
var segmentPattern = identifierPattern

// Validate checks a single catalog for structural correctness: required
// fields, well-formed identifiers and category segments, and unique
// destinations within the catalog.
func Validate(c *Catalog) []ValidationError {
	var errs []ValidationError

	if c.Len() == 0 {
		errs = append(errs, ValidationError{Catalog: c.Name, Err: ErrEmptyCatalog})
		return errs
	}

	seen := make(map[string]bool)
	for _, cat := range c.Categories {
		path := strings.Join(cat.Segments, "/")

		if len(cat.Segments) == 0 {
			errs = append(errs, ValidationError{
				Catalog: c.Name,
				Err:     fmt.Errorf("%w: category segments", ErrMissingField),
			})
			continue
		}
		for _, seg := range cat.Segments {
			if !segmentPattern.MatchString(seg) {
				errs = append(errs, ValidationError{
					Catalog:  c.Name,
					Category: path,
					Err:      fmt.Errorf("%w: category segment %q", ErrBadIdentifier, seg),
				})
			}
		}

		for _, e := range cat.Entries {
			if e.Identifier == "" {
				errs = append(errs, ValidationError{
					Catalog:  c.Name,
					Category: path,
					Err:      fmt.Errorf("%w: identifier", ErrMissingField),
				})
				continue
			}
			if !identifierPattern.MatchString(e.Identifier) {
				errs = append(errs, ValidationError{
					Catalog:    c.Name,
					Category:   path,
					Identifier: e.Identifier,
					Err:        fmt.Errorf("%w: %q", ErrBadIdentifier, e.Identifier),
				})
			}
			if e.Description == "" {
				errs = append(errs, ValidationError{
					Catalog:    c.Name,
					Category:   path,
					Identifier: e.Identifier,
					Err:        fmt.Errorf("%w: description", ErrMissingField),
				})
			}

			dest := path + "/" + e.Identifier
			if seen[dest] {
				errs = append(errs, ValidationError{
					Catalog:    c.Name,
					Category:   path,
					Identifier: e.Identifier,
					Err:        fmt.Errorf("%w: %s", ErrDuplicateEntry, dest),
				})
			}
			seen[dest] = true
		}
	}

	return errs
}

// Merge combines independently defined catalogs into a single run catalog,
// preserving declaration order across catalogs. Identifier collisions within
// the same destination path are a structural error: without this pre-pass,
// last-writer-wins would silently overwrite one catalog's output with
// another's. Catalogs are distinguished by argument position, never by name:
// two distinct catalogs that happen to share a name still collide.
func Merge(catalogs ...*Catalog) (*Catalog, []ValidationError) {
	merged := &Catalog{Name: "merged"}
	if len(catalogs) == 1 {
		merged.Name = catalogs[0].Name
	}

	type destOwner struct {
		index int
		name  string
	}

	var errs []ValidationError
	seen := make(map[string]destOwner) // destination → first defining catalog

	for i, c := range catalogs {
		errs = append(errs, Validate(c)...)

		for _, cat := range c.Categories {
			path := strings.Join(cat.Segments, "/")
			for _, e := range cat.Entries {
				dest := path + "/" + e.Identifier
				if owner, ok := seen[dest]; ok {
					// A duplicate inside one catalog is already reported by
					// Validate; only cross-catalog collisions are new here.
					if owner.index != i {
						errs = append(errs, ValidationError{
							Catalog:    c.Name,
							Category:   path,
							Identifier: e.Identifier,
							Err:        fmt.Errorf("%w: %s already defined by catalog %q", ErrDuplicateEntry, dest, owner.name),
						})
					}
					continue
				}
				seen[dest] = destOwner{index: i, name: c.Name}
			}
			merged.appendCategory(cat)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return merged, nil
}

// appendCategory merges a category group into the catalog, extending an
// existing group with the same path rather than duplicating it.
func (c *Catalog) appendCategory(cat Category) {
	path := strings.Join(cat.Segments, "/")
	for i := range c.Categories {
		if strings.Join(c.Categories[i].Segments, "/") == path {
			c.Categories[i].Entries = append(c.Categories[i].Entries, cat.Entries...)
			return
		}
	}
	// Deep-copy the entry slice so later appends don't alias the source.
	group := Category{Segments: cat.Segments, Entries: make([]Entry, len(cat.Entries))}
	copy(group.Entries, cat.Entries)
	c.Categories = append(c.Categories, group)
}
