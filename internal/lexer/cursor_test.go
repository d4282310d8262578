package lexer

import (
	"testing"

	"treegen/internal/source"
)

func TestCursorBumpAndSpanFrom(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.tree", []byte("abc"))
	c := NewCursor(fs.Get(id))

	m := c.Mark()
	if got := c.Bump(); got != 'a' {
		t.Fatalf("Bump() = %q, want 'a'", got)
	}
	if got := c.Bump(); got != 'b' {
		t.Fatalf("Bump() = %q, want 'b'", got)
	}
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %+v, want {0,2}", sp)
	}
}

func TestCursorEOFAndPeek2(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.tree", []byte("a"))
	c := NewCursor(fs.Get(id))

	if c.EOF() {
		t.Fatalf("expected not EOF before consuming the single byte")
	}
	if _, _, ok := c.Peek2(); ok {
		t.Fatalf("Peek2() on a 1-byte file should report ok=false")
	}
	c.Bump()
	if !c.EOF() {
		t.Fatalf("expected EOF after consuming the only byte")
	}
	if c.Peek() != 0 {
		t.Fatalf("Peek() at EOF should return 0")
	}
}
