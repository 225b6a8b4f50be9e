package catalog

// Entry is one catalog item to be scaffolded into a directory of artifacts.
type Entry struct {
	Identifier  string     `toml:"identifier"`
	Description string     `toml:"description"`
	Concepts    []string   `toml:"concepts"`
	Scenarios   []Scenario `toml:"scenarios"`
}

// Scenario is one named demonstration rendered into an entry's program artifact.
type Scenario struct {
	Name   string `toml:"name"`
	Detail string `toml:"detail"`
}

// Category groups entries under an ordered path of segments.
// Segments map onto both directory structure and namespace structure.
type Category struct {
	Segments []string `toml:"segments"`
	Entries  []Entry  `toml:"entries"`
}

// Catalog is an ordered registry of categories. Declaration order is
// preserved end to end: the generator never sorts, dedups, or filters.
type Catalog struct {
	Name       string     `toml:"name"`
	Categories []Category `toml:"categories"`
}

// Len returns the total number of entries across all categories.
func (c *Catalog) Len() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Entries)
	}
	return n
}
