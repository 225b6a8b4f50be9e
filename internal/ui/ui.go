// Package ui provides stderr-based console output for pulsar. This surface
// is for humans only; callers should programmatically depend on the run
// summary and the process exit code, never on these lines.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/papapumpkin/pulsar/internal/ansi"
	"github.com/papapumpkin/pulsar/internal/scaffold"
)

// Printer writes run progress and results to a terminal.
type Printer struct {
	out io.Writer
}

// New returns a Printer writing to stderr.
func New() *Printer {
	return &Printer{out: os.Stderr}
}

// NewWriter returns a Printer writing to w. Used by tests.
func NewWriter(w io.Writer) *Printer {
	return &Printer{out: w}
}

// Banner prints the tool header.
func (p *Printer) Banner() {
	fmt.Fprintln(p.out, ansi.Bold+ansi.Cyan+"  ╔═══════════════════════════════════╗"+ansi.Reset)
	fmt.Fprintln(p.out, ansi.Bold+ansi.Cyan+"  ║"+ansi.Reset+ansi.Bold+"   PULSAR  "+ansi.Dim+"pattern scaffolder     "+ansi.Reset+ansi.Bold+ansi.Cyan+"║"+ansi.Reset)
	fmt.Fprintln(p.out, ansi.Bold+ansi.Cyan+"  ╚═══════════════════════════════════╝"+ansi.Reset)
	fmt.Fprintln(p.out)
}

// Info prints a dim informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.out, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.out, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

// EntryOutcome prints one line per processed entry.
func (p *Printer) EntryOutcome(o scaffold.Outcome) {
	switch o.State {
	case scaffold.StateGenerated:
		fmt.Fprintf(p.out, ansi.Green+"  ✓ %s"+ansi.Reset+ansi.Dim+" (%d artifacts)"+ansi.Reset+"\n", o.Identifier, o.Artifacts)
	case scaffold.StateSkipped:
		fmt.Fprintf(p.out, ansi.Yellow+"  ○ %s"+ansi.Reset+ansi.Dim+" skipped — %s"+ansi.Reset+"\n", o.Identifier, o.Reason)
	case scaffold.StateFailed:
		fmt.Fprintf(p.out, ansi.Red+"  ✗ %s"+ansi.Reset+" — %v\n", o.Identifier, o.Err)
	}
}

// CategoryDone prints one summary line per category.
func (p *Printer) CategoryDone(category []string, generated, skipped, failed int) {
	fmt.Fprintf(p.out, ansi.Cyan+"◆ %s"+ansi.Reset+ansi.Dim+" — %d generated, %d skipped, %d failed"+ansi.Reset+"\n",
		strings.Join(category, "/"), generated, skipped, failed)
}

// RunDone prints the final summary line.
func (p *Printer) RunDone(s *scaffold.Summary) {
	color := ansi.Green
	if s.Failed > 0 {
		color = ansi.Red
	}
	fmt.Fprintf(p.out, "\n"+color+ansi.Bold+"run complete"+ansi.Reset+" — %d generated, %d skipped, %d failed, %d total\n",
		s.Generated, s.Skipped, s.Failed, s.Total)
}
