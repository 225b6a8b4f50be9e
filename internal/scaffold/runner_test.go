package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/papapumpkin/pulsar/internal/catalog"
)

// recordingReporter captures every callback so tests can assert call order
// and payloads without a real console or telemetry sink.
type recordingReporter struct {
	outcomes   []Outcome
	categories []string
	summaries  []*Summary
}

func (r *recordingReporter) EntryOutcome(o Outcome) { r.outcomes = append(r.outcomes, o) }
func (r *recordingReporter) CategoryDone(category []string, generated, skipped, failed int) {
	r.categories = append(r.categories, filepath.Join(category...))
}
func (r *recordingReporter) RunDone(s *Summary) { r.summaries = append(r.summaries, s) }

func routerCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Name: "integration",
		Categories: []catalog.Category{
			{
				Segments: []string{"Integration", "Routing"},
				Entries: []catalog.Entry{
					{
						Identifier:  "ContentBasedRouter",
						Description: "Routes messages by content",
						Scenarios: []catalog.Scenario{
							{Name: "HighPriority", Detail: "route urgent orders"},
						},
					},
				},
			},
		},
	}
}

func TestRunner_GeneratesFullArtifactSet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	rec := &recordingReporter{}
	r := &Runner{Root: root, Reporters: []Reporter{rec}}

	summary := r.Run(routerCatalog())

	if summary.Generated != 1 || summary.Skipped != 0 || summary.Failed != 0 || summary.Total != 1 {
		t.Fatalf("summary = %+v, want generated=1 skipped=0 failed=0 total=1", summary)
	}

	dir := filepath.Join(root, "Integration", "Routing", "ContentBasedRouter")
	for _, name := range []string{
		"IContentBasedRouter.cs",
		"ContentBasedRouterImplementation.cs",
		"Program.cs",
		"README.md",
		"ContentBasedRouter.csproj",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	if len(rec.outcomes) != 1 || rec.outcomes[0].State != StateGenerated || rec.outcomes[0].Artifacts != 5 {
		t.Errorf("reporter outcomes = %+v", rec.outcomes)
	}
	if len(rec.categories) != 1 || len(rec.summaries) != 1 {
		t.Errorf("reporter calls: categories=%d summaries=%d", len(rec.categories), len(rec.summaries))
	}
}

func TestRunner_RerunSkipsCompletedEntries(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	r := &Runner{Root: root}

	first := r.Run(routerCatalog())
	if first.Generated != 1 {
		t.Fatalf("first run: %+v", first)
	}

	second := r.Run(routerCatalog())
	if second.Generated != 0 || second.Skipped != 1 || second.Failed != 0 {
		t.Fatalf("second run = %+v, want everything skipped", second)
	}
	if second.Outcomes[0].Reason == "" {
		t.Error("skipped outcome should carry a reason")
	}
}

func TestRunner_SkipsPrePopulatedDestination(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, "Integration", "Routing", "ContentBasedRouter")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.cs", "b.cs", "c.cs"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("hand-written"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	r := &Runner{Root: root, Threshold: 3}
	summary := r.Run(routerCatalog())

	if summary.Skipped != 1 || summary.Generated != 0 {
		t.Fatalf("summary = %+v, want the pre-populated entry skipped", summary)
	}
	data, err := os.ReadFile(filepath.Join(dir, "a.cs"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hand-written" {
		t.Error("skip must leave existing files untouched")
	}
}

func TestRunner_ForceBypassesGate(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	r := &Runner{Root: root}
	r.Run(routerCatalog())

	forced := &Runner{Root: root, Force: true}
	summary := forced.Run(routerCatalog())

	if summary.Generated != 1 || summary.Skipped != 0 {
		t.Fatalf("forced summary = %+v, want regeneration", summary)
	}
}

func TestRunner_DryRunWritesNothing(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	r := &Runner{Root: root, DryRun: true}
	summary := r.Run(routerCatalog())

	if summary.Generated != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if _, err := os.Stat(filepath.Join(root, "Integration")); !os.IsNotExist(err) {
		t.Errorf("dry run must not touch disk, stat err = %v", err)
	}
}

func TestRunner_EntryFailureIsIsolated(t *testing.T) {
	t.Parallel()

	cat := &catalog.Catalog{
		Name: "mixed",
		Categories: []catalog.Category{
			{
				Segments: []string{"Integration", "Routing"},
				Entries: []catalog.Entry{
					{Identifier: "Splitter", Description: "Splits composite messages"},
					{Identifier: "Broken"}, // no description: rendering fails
					{Identifier: "Aggregator", Description: "Recombines related messages"},
				},
			},
		},
	}

	root := t.TempDir()
	rec := &recordingReporter{}
	r := &Runner{Root: root, Reporters: []Reporter{rec}}
	summary := r.Run(cat)

	if summary.Generated != 2 || summary.Failed != 1 || summary.Total != 3 {
		t.Fatalf("summary = %+v, want generated=2 failed=1 total=3", summary)
	}

	// The failed entry leaves no directory behind: rendering happens fully
	// in memory before the first write.
	if _, err := os.Stat(filepath.Join(root, "Integration", "Routing", "Broken")); !os.IsNotExist(err) {
		t.Errorf("failed entry must not materialize, stat err = %v", err)
	}
	// Entries after the failure still generate.
	if _, err := os.Stat(filepath.Join(root, "Integration", "Routing", "Aggregator", "Program.cs")); err != nil {
		t.Errorf("entry after failure not generated: %v", err)
	}

	if rec.outcomes[1].State != StateFailed || rec.outcomes[1].Err == nil {
		t.Errorf("failed outcome = %+v", rec.outcomes[1])
	}
}

func TestRunner_ProcessesCategoriesInDeclarationOrder(t *testing.T) {
	t.Parallel()

	cat := &catalog.Catalog{
		Name: "ordered",
		Categories: []catalog.Category{
			{Segments: []string{"Zeta"}, Entries: []catalog.Entry{{Identifier: "First", Description: "d"}}},
			{Segments: []string{"Alpha"}, Entries: []catalog.Entry{{Identifier: "Second", Description: "d"}}},
		},
	}

	rec := &recordingReporter{}
	r := &Runner{Root: t.TempDir(), Reporters: []Reporter{rec}}
	r.Run(cat)

	if len(rec.outcomes) != 2 || rec.outcomes[0].Identifier != "First" || rec.outcomes[1].Identifier != "Second" {
		t.Errorf("outcomes out of declaration order: %+v", rec.outcomes)
	}
	if len(rec.categories) != 2 || rec.categories[0] != "Zeta" || rec.categories[1] != "Alpha" {
		t.Errorf("categories out of declaration order: %v", rec.categories)
	}
}

func TestRunner_ZeroThresholdUsesDefault(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, "Integration", "Routing", "ContentBasedRouter")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	// Two files: below the default threshold of three, so the entry still
	// regenerates.
	for _, name := range []string{"a.cs", "b.cs"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	r := &Runner{Root: root}
	summary := r.Run(routerCatalog())
	if summary.Generated != 1 {
		t.Fatalf("summary = %+v, want regeneration below default threshold", summary)
	}
}
