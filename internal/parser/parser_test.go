package parser

import (
	"testing"

	"treegen/internal/ast"
	"treegen/internal/diag"
	"treegen/internal/source"
)

func parse(t *testing.T, src string) (*ast.File, *diag.Sink) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.tree", []byte(src))
	sink := diag.NewSink(diag.NewBag(100), fs)
	p := New(fs.Get(id), sink)
	f, err := p.Parse()
	if err != nil && err != diag.ErrAborted {
		t.Fatalf("Parse() returned an unexpected error: %v", err)
	}
	return f, sink
}

func TestParseMinimalSpec(t *testing.T) {
	src := `
extern SourceLocation;

root Expr;

abstract node Expr {
}

node Literal : Expr {
  value: int;
  (value);
}
`
	f, sink := parse(t, src)
	if sink.Failed() {
		t.Fatalf("unexpected diagnostics: %d", sink.Bag().Len())
	}
	if len(f.Externs) != 1 || f.Externs[0].Name != "SourceLocation" {
		t.Fatalf("externs = %+v", f.Externs)
	}
	if f.Root == nil || f.Root.Name != "Expr" {
		t.Fatalf("root = %+v", f.Root)
	}
	if len(f.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(f.Nodes))
	}
	if !f.Nodes[0].Abstract || f.Nodes[0].Name != "Expr" {
		t.Fatalf("node[0] = %+v", f.Nodes[0])
	}
	lit := f.Nodes[1]
	if lit.Name != "Literal" || lit.Base != "Expr" {
		t.Fatalf("node[1] = %+v", lit)
	}
	if len(lit.Fields) != 1 || lit.Fields[0].Name != "value" {
		t.Fatalf("fields = %+v", lit.Fields)
	}
	if len(lit.Ctors) != 1 || len(lit.Ctors[0].Args) != 1 || lit.Ctors[0].Args[0].Name != "value" {
		t.Fatalf("ctors = %+v", lit.Ctors)
	}
}

func TestParseTargetWithOptions(t *testing.T) {
	src := `
target cpp {
  namespace: "ast";
  use_line_directives: true;
  cpp_indent: " ";
}
`
	f, sink := parse(t, src)
	if sink.Failed() {
		t.Fatalf("unexpected diagnostics: %d", sink.Bag().Len())
	}
	if len(f.Targets) != 1 || f.Targets[0].Name != "cpp" {
		t.Fatalf("targets = %+v", f.Targets)
	}
	if len(f.Targets[0].Options) != 3 {
		t.Fatalf("options = %+v", f.Targets[0].Options)
	}
}

func TestParseWeakListField(t *testing.T) {
	src := `
node Block {
  weak children: list Stmt;
}
`
	f, _ := parse(t, src)
	if len(f.Nodes) != 1 || len(f.Nodes[0].Fields) != 1 {
		t.Fatalf("nodes = %+v", f.Nodes)
	}
	field := f.Nodes[0].Fields[0]
	if !field.Weak || !field.Type.List || field.Type.Name != "Stmt" {
		t.Fatalf("field = %+v", field)
	}
}

func TestParseDuplicateOptionReportsNonFatalError(t *testing.T) {
	src := `
target cpp {
  namespace: "a";
  namespace: "b";
}
`
	_, sink := parse(t, src)
	if !sink.Bag().HasErrors() {
		t.Fatalf("expected a duplicate-option diagnostic")
	}
}

func TestParseRejectsGarbageTopLevel(t *testing.T) {
	_, sink := parse(t, "123")
	if !sink.Failed() {
		t.Fatalf("expected a syntax error for a stray top-level literal")
	}
}
