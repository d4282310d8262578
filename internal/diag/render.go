package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"treegen/internal/source"
)

// visualWidthUpTo computes the on-screen column width of s up to byteCol
// (1-based, in bytes), expanding tabs to tabWidth and using go-runewidth so
// East-Asian wide runes are accounted for when aligning the caret underneath
// a diagnostic span. Grounded on the teacher's diagfmt caret alignment; this
// copy renders plain text only — color and TTY detection stay in cmd/gentree.
func visualWidthUpTo(s string, byteCol uint32, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}

	bytePos := 0
	visualPos := 0
	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visualPos
}

// RenderPlain writes bag's diagnostics to w as
//
//	<path>:<line>:<col>: SEVERITY CODE: message
//	  <source line>
//	  <caret underline>
//	    note: ...
//
// with no color or TTY detection (spec.md §4.1: rendering is "resolve a
// Location into a caret-annotated source line"; colorizing that text is an
// external concern left to cmd/gentree). Call bag.Sort() first for a
// deterministic order.
func RenderPlain(w io.Writer, bag *Bag, fs *source.FileSet) {
	const tabWidth = 4

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w) //nolint:errcheck // blank separator line between diagnostics
		}
		renderOne(w, d, fs, tabWidth)
	}
}

func renderOne(w io.Writer, d *Diagnostic, fs *source.FileSet, tabWidth int) {
	start, _ := fs.Resolve(d.Primary)
	f := fs.Get(d.Primary.File)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", f.Path, start.Line, start.Col, d.Severity, d.Code.ID(), d.Message) //nolint:errcheck

	line := f.GetLine(start.Line)
	if line != "" {
		fmt.Fprintf(w, "  %s\n", strings.TrimRight(line, "\r\n")) //nolint:errcheck
		width := visualWidthUpTo(line, start.Col, tabWidth)
		fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", width)) //nolint:errcheck
	}

	for _, n := range d.Notes {
		nStart, _ := fs.Resolve(n.Span)
		nf := fs.Get(n.Span.File)
		fmt.Fprintf(w, "    note: %s:%d:%d: %s\n", nf.Path, nStart.Line, nStart.Col, n.Msg) //nolint:errcheck
	}
}
