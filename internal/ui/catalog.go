package ui

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/pulsar/internal/ansi"
	"github.com/papapumpkin/pulsar/internal/catalog"
)

// CatalogList renders the merged catalog grouped by category.
func (p *Printer) CatalogList(c *catalog.Catalog) {
	for _, group := range c.Categories {
		fmt.Fprintf(p.out, ansi.Bold+ansi.Cyan+"%s"+ansi.Reset+ansi.Dim+" (%d entries)"+ansi.Reset+"\n",
			strings.Join(group.Segments, "/"), len(group.Entries))
		for _, e := range group.Entries {
			marker := " "
			if len(e.Scenarios) > 0 {
				marker = ansi.Magenta + "▸" + ansi.Reset
			}
			fmt.Fprintf(p.out, "  %s %s"+ansi.Dim+" — %s"+ansi.Reset+"\n", marker, e.Identifier, e.Description)
		}
	}
	fmt.Fprintf(p.out, ansi.Dim+"\n%d entries total\n"+ansi.Reset, c.Len())
}

// ValidationErrors renders every structural catalog error.
func (p *Printer) ValidationErrors(errs []catalog.ValidationError) {
	for _, ve := range errs {
		p.Error(ve.Error())
	}
	fmt.Fprintf(p.out, ansi.Red+ansi.Bold+"✗ %d structural error(s)"+ansi.Reset+" — nothing was written\n", len(errs))
}

// ValidationOK reports a clean validation pass.
func (p *Printer) ValidationOK(c *catalog.Catalog) {
	fmt.Fprintf(p.out, ansi.Green+ansi.Bold+"✓ catalog ok"+ansi.Reset+" — %d entries, no structural errors\n", c.Len())
}
