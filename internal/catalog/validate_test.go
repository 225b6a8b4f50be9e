package catalog

import (
	"errors"
	"testing"
)

func validCatalog(name string) *Catalog {
	return &Catalog{
		Name: name,
		Categories: []Category{
			{
				Segments: []string{"Integration", "Routing"},
				Entries: []Entry{
					{Identifier: "ContentBasedRouter", Description: "Routes messages by content"},
					{Identifier: "Splitter", Description: "Splits composite messages"},
				},
			},
		},
	}
}

func TestValidate_CleanCatalog(t *testing.T) {
	t.Parallel()

	if errs := Validate(validCatalog("integration")); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidate_EmptyCatalog(t *testing.T) {
	t.Parallel()

	errs := Validate(&Catalog{Name: "empty"})
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if !errors.Is(&errs[0], ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", errs[0].Err)
	}
}

func TestValidate_FieldAndIdentifierProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		catalog *Catalog
		want    error
	}{
		{
			name: "missing identifier",
			catalog: &Catalog{Name: "c", Categories: []Category{{
				Segments: []string{"Cloud"},
				Entries:  []Entry{{Description: "d"}},
			}}},
			want: ErrMissingField,
		},
		{
			name: "missing description",
			catalog: &Catalog{Name: "c", Categories: []Category{{
				Segments: []string{"Cloud"},
				Entries:  []Entry{{Identifier: "Retry"}},
			}}},
			want: ErrMissingField,
		},
		{
			name: "missing category segments",
			catalog: &Catalog{Name: "c", Categories: []Category{{
				Entries: []Entry{{Identifier: "Retry", Description: "d"}},
			}}},
			want: ErrMissingField,
		},
		{
			name: "identifier with path separator",
			catalog: &Catalog{Name: "c", Categories: []Category{{
				Segments: []string{"Cloud"},
				Entries:  []Entry{{Identifier: "Retry/Pattern", Description: "d"}},
			}}},
			want: ErrBadIdentifier,
		},
		{
			name: "identifier starting with digit",
			catalog: &Catalog{Name: "c", Categories: []Category{{
				Segments: []string{"Cloud"},
				Entries:  []Entry{{Identifier: "2PhaseCommit", Description: "d"}},
			}}},
			want: ErrBadIdentifier,
		},
		{
			name: "bad category segment",
			catalog: &Catalog{Name: "c", Categories: []Category{{
				Segments: []string{"Cloud Patterns"},
				Entries:  []Entry{{Identifier: "Retry", Description: "d"}},
			}}},
			want: ErrBadIdentifier,
		},
		{
			name: "duplicate destination within catalog",
			catalog: &Catalog{Name: "c", Categories: []Category{{
				Segments: []string{"Cloud"},
				Entries: []Entry{
					{Identifier: "Retry", Description: "d"},
					{Identifier: "Retry", Description: "again"},
				},
			}}},
			want: ErrDuplicateEntry,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := Validate(tt.catalog)
			if len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			found := false
			for i := range errs {
				if errors.Is(&errs[i], tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %v among %v", tt.want, errs)
			}
		})
	}
}

func TestValidate_SameIdentifierDifferentCategories(t *testing.T) {
	t.Parallel()

	c := &Catalog{Name: "c", Categories: []Category{
		{Segments: []string{"Cloud"}, Entries: []Entry{{Identifier: "Retry", Description: "d"}}},
		{Segments: []string{"Integration"}, Entries: []Entry{{Identifier: "Retry", Description: "d"}}},
	}}
	if errs := Validate(c); len(errs) != 0 {
		t.Errorf("same identifier under distinct paths is legal, got %v", errs)
	}
}

func TestMerge_PreservesDeclarationOrder(t *testing.T) {
	t.Parallel()

	a := &Catalog{Name: "a", Categories: []Category{
		{Segments: []string{"Cloud"}, Entries: []Entry{{Identifier: "Retry", Description: "d"}}},
	}}
	b := &Catalog{Name: "b", Categories: []Category{
		{Segments: []string{"Cloud"}, Entries: []Entry{{Identifier: "CircuitBreaker", Description: "d"}}},
		{Segments: []string{"Integration"}, Entries: []Entry{{Identifier: "Splitter", Description: "d"}}},
	}}

	merged, errs := Merge(a, b)
	if len(errs) != 0 {
		t.Fatalf("Merge: %v", errs)
	}
	if len(merged.Categories) != 2 {
		t.Fatalf("expected Cloud group merged, got %d groups", len(merged.Categories))
	}
	cloud := merged.Categories[0]
	if len(cloud.Entries) != 2 || cloud.Entries[0].Identifier != "Retry" || cloud.Entries[1].Identifier != "CircuitBreaker" {
		t.Errorf("cloud group out of order: %+v", cloud.Entries)
	}
	if merged.Len() != 3 {
		t.Errorf("Len = %d, want 3", merged.Len())
	}
}

func TestMerge_RejectsCrossCatalogCollision(t *testing.T) {
	t.Parallel()

	a := &Catalog{Name: "a", Categories: []Category{
		{Segments: []string{"Cloud"}, Entries: []Entry{{Identifier: "Retry", Description: "d"}}},
	}}
	b := &Catalog{Name: "b", Categories: []Category{
		{Segments: []string{"Cloud"}, Entries: []Entry{{Identifier: "Retry", Description: "other"}}},
	}}

	merged, errs := Merge(a, b)
	if merged != nil {
		t.Error("colliding merge must not return a catalog")
	}
	if len(errs) == 0 {
		t.Fatal("expected a collision error")
	}
	found := false
	for i := range errs {
		if errors.Is(&errs[i], ErrDuplicateEntry) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ErrDuplicateEntry among %v", errs)
	}
}

func TestMerge_RejectsCollisionBetweenSameNamedCatalogs(t *testing.T) {
	t.Parallel()

	// Catalogs default their name to the file stem, so a user cloud.toml and
	// the builtin cloud catalog arrive here under the same name. They are
	// still distinct catalogs and must collide.
	a := &Catalog{Name: "cloud", Categories: []Category{
		{Segments: []string{"Cloud"}, Entries: []Entry{{Identifier: "Retry", Description: "d"}}},
	}}
	b := &Catalog{Name: "cloud", Categories: []Category{
		{Segments: []string{"Cloud"}, Entries: []Entry{{Identifier: "Retry", Description: "other"}}},
	}}

	merged, errs := Merge(a, b)
	if merged != nil {
		t.Error("colliding merge must not return a catalog")
	}
	found := false
	for i := range errs {
		if errors.Is(&errs[i], ErrDuplicateEntry) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ErrDuplicateEntry among %v", errs)
	}
}

func TestMerge_IntraCatalogDuplicateReportedOnce(t *testing.T) {
	t.Parallel()

	c := &Catalog{Name: "c", Categories: []Category{{
		Segments: []string{"Cloud"},
		Entries: []Entry{
			{Identifier: "Retry", Description: "d"},
			{Identifier: "Retry", Description: "again"},
		},
	}}}

	_, errs := Merge(c)
	count := 0
	for i := range errs {
		if errors.Is(&errs[i], ErrDuplicateEntry) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected the duplicate reported exactly once, got %d in %v", count, errs)
	}
}

func TestMerge_SingleCatalogKeepsName(t *testing.T) {
	t.Parallel()

	merged, errs := Merge(validCatalog("integration"))
	if len(errs) != 0 {
		t.Fatalf("Merge: %v", errs)
	}
	if merged.Name != "integration" {
		t.Errorf("Name = %q, want %q", merged.Name, "integration")
	}
}

func TestMerge_DoesNotAliasSourceEntries(t *testing.T) {
	t.Parallel()

	a := validCatalog("a")
	b := &Catalog{Name: "b", Categories: []Category{
		{Segments: []string{"Integration", "Routing"}, Entries: []Entry{{Identifier: "Aggregator", Description: "d"}}},
	}}

	merged, errs := Merge(a, b)
	if len(errs) != 0 {
		t.Fatalf("Merge: %v", errs)
	}

	merged.Categories[0].Entries[0].Description = "mutated"
	if a.Categories[0].Entries[0].Description == "mutated" {
		t.Error("merge must not alias the source catalog's entries")
	}
}

func TestValidationError_Format(t *testing.T) {
	t.Parallel()

	e := &ValidationError{Catalog: "cloud", Category: "Cloud/Resilience", Identifier: "Retry", Err: ErrMissingField}
	want := "cloud: Cloud/Resilience/Retry: required field missing"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
	if !errors.Is(e, ErrMissingField) {
		t.Error("Unwrap must expose the sentinel")
	}
}
