package diag

import (
	"testing"

	"treegen/internal/source"
)

func TestBagAddRespectsCapacity(t *testing.T) {
	bag := NewBag(2)
	sp := source.Span{File: 0, Start: 0, End: 1}

	if !bag.Add(&Diagnostic{Severity: SevError, Code: LexIllegalChar, Primary: sp}) {
		t.Fatalf("expected first Add to succeed")
	}
	if !bag.Add(&Diagnostic{Severity: SevError, Code: LexIllegalChar, Primary: sp}) {
		t.Fatalf("expected second Add to succeed")
	}
	if bag.Add(&Diagnostic{Severity: SevError, Code: LexIllegalChar, Primary: sp}) {
		t.Fatalf("expected third Add to fail once at capacity")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(10)
	sp := source.Span{File: 0, Start: 0, End: 1}

	bag.Add(&Diagnostic{Severity: SevNote, Code: UnknownCode, Primary: sp})
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatalf("note-only bag should report neither errors nor warnings")
	}

	bag.Add(&Diagnostic{Severity: SevWarning, Code: UnknownCode, Primary: sp})
	if bag.HasErrors() {
		t.Fatalf("warning should not count as an error")
	}
	if !bag.HasWarnings() {
		t.Fatalf("expected HasWarnings() == true")
	}

	bag.Add(&Diagnostic{Severity: SevError, Code: LexIllegalChar, Primary: sp})
	if !bag.HasErrors() {
		t.Fatalf("expected HasErrors() == true")
	}
}

func TestBagSortOrdersByFileThenOffsetThenSeverity(t *testing.T) {
	bag := NewBag(10)
	bag.Add(&Diagnostic{Severity: SevWarning, Code: DuplicateNode, Primary: source.Span{File: 1, Start: 5, End: 6}})
	bag.Add(&Diagnostic{Severity: SevError, Code: LexIllegalChar, Primary: source.Span{File: 0, Start: 10, End: 11}})
	bag.Add(&Diagnostic{Severity: SevError, Code: SyntaxInvalid, Primary: source.Span{File: 0, Start: 2, End: 3}})

	bag.Sort()

	items := bag.Items()
	if items[0].Code != SyntaxInvalid || items[1].Code != LexIllegalChar || items[2].Code != DuplicateNode {
		t.Fatalf("unexpected sort order: %+v", items)
	}
}

func TestBagDedupRemovesExactRepeats(t *testing.T) {
	bag := NewBag(10)
	sp := source.Span{File: 0, Start: 0, End: 1}

	bag.Add(&Diagnostic{Severity: SevError, Code: LexIllegalChar, Primary: sp, Message: "bad byte"})
	bag.Add(&Diagnostic{Severity: SevError, Code: LexIllegalChar, Primary: sp, Message: "bad byte"})
	bag.Add(&Diagnostic{Severity: SevError, Code: LexIllegalChar, Primary: sp, Message: "different message"})

	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("Dedup() left Len() = %d, want 2", bag.Len())
	}
}
