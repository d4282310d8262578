package source

import "testing"

func TestAddVirtualAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("spec.tg", []byte("node A {\n  int x;\n}\n"))
	f := fs.Get(id)
	if f.Path != "spec.tg" {
		t.Errorf("Path = %q, want spec.tg", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("expected FileVirtual flag set")
	}

	// "int x;" starts at byte 11 (line 2).
	span := Span{File: id, Start: 11, End: 17}
	start, end := fs.Resolve(span)
	if start.Line != 2 {
		t.Errorf("start.Line = %d, want 2", start.Line)
	}
	if end.Line != 2 {
		t.Errorf("end.Line = %d, want 2", end.Line)
	}

	loc := fs.Locate(span)
	if loc.File != "spec.tg" || loc.Line != 2 {
		t.Errorf("Locate() = %+v, want file=spec.tg line=2", loc)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("s.tg", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	cases := map[uint32]string{1: "one", 2: "two", 3: "three", 4: ""}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestGetByPathLatestWins(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("a.tg", []byte("first"))
	second := fs.AddVirtual("a.tg", []byte("second"))
	if first == second {
		t.Fatalf("expected distinct FileIDs for repeated Add")
	}

	got, ok := fs.GetByPath("a.tg")
	if !ok {
		t.Fatalf("GetByPath did not find a.tg")
	}
	if got.ID != second {
		t.Errorf("GetByPath returned stale FileID %d, want latest %d", got.ID, second)
	}
}
