package codeobj

import (
	"strings"
	"testing"

	"treegen/internal/emit"
)

func render(n Node) string {
	e := emit.New("  ")
	n.Codegen(e)
	return e.String()
}

func TestTemplatedTypeJoinsEveryArgument(t *testing.T) {
	got := render(TemplatedType{
		Base: "std::tuple",
		Args: []Node{TypeName{Name: "A"}, TypeName{Name: "B"}, TypeName{Name: "C"}},
	})
	want := "std::tuple<A, B, C>"
	if got != want {
		t.Fatalf("Codegen() = %q, want %q", got, want)
	}
}

func TestClassDeclRendersBasesAndMembers(t *testing.T) {
	got := render(ClassDecl{
		Name:  "IntNode",
		Bases: []string{"Expr"},
		Members: []Node{
			Field{Type: TypeName{Name: "int"}, Name: "value"},
		},
	})
	if !strings.Contains(got, "class IntNode : public Expr {") {
		t.Errorf("missing class header, got %q", got)
	}
	if !strings.Contains(got, "int value;") {
		t.Errorf("missing field, got %q", got)
	}
}

func TestDtorDefDeletesOwningFields(t *testing.T) {
	got := render(DtorDef{
		ClassName: "IntNode",
		Body: []Node{
			DeleteStmt{Target: "child"},
			DeleteStmt{Target: "items", Range: true},
		},
	})
	if !strings.Contains(got, "IntNode::~IntNode() {") {
		t.Errorf("missing dtor header, got %q", got)
	}
	if !strings.Contains(got, "delete child;") {
		t.Errorf("missing scalar delete, got %q", got)
	}
	if !strings.Contains(got, "for (auto* treegen_elem : items) delete treegen_elem;") {
		t.Errorf("missing range delete, got %q", got)
	}
}

func TestCtorRendersInitializerList(t *testing.T) {
	got := render(Ctor{
		ClassName: "IntNode",
		Params:    []Param{{Type: TypeName{Name: "int"}, Name: "value"}},
		Inits: []Node{
			BaseInit{Base: "Expr", Args: []Node{}},
			InitExpr{Member: "value_", Args: []Node{InitArg{Text: "value"}}},
		},
	})
	want := "IntNode(int value) : Expr(), value_(value) {\n}\n"
	if got != want {
		t.Fatalf("Codegen() = %q, want %q", got, want)
	}
}

func TestLineDirectiveWithAndWithoutFile(t *testing.T) {
	got := render(Line{LineNum: 12, File: "shapes.tree"})
	if got != "#line 12 \"shapes.tree\"\n" {
		t.Fatalf("Codegen() = %q", got)
	}
	got = render(Line{LineNum: 12})
	if got != "#line 12\n" {
		t.Fatalf("Codegen() = %q", got)
	}
}

func TestNamespaceWrapsItems(t *testing.T) {
	got := render(&Namespace{Name: "ast", Items: []Node{RawStmt{Text: "class Expr;"}}})
	if !strings.Contains(got, "namespace ast {") || !strings.Contains(got, "} // namespace ast") {
		t.Errorf("missing namespace wrapper, got %q", got)
	}
}

func TestIfndefBumpsPPIndentUntilEndif(t *testing.T) {
	tu := &TranslationUnit{Items: []Node{
		Ifndef{Name: "GUARD_H"},
		Define{Name: "GUARD_H"},
		Line{LineNum: 3, File: "shapes.tree"},
		Endif{},
	}}
	got := render(tu)
	want := "#ifndef GUARD_H\n  #define GUARD_H\n  #line 3 \"shapes.tree\"\n#endif\n"
	if got != want {
		t.Fatalf("Codegen() = %q, want %q", got, want)
	}
}

func TestNamespaceWithEmptyNameOmitsWrapper(t *testing.T) {
	got := render(&Namespace{Items: []Node{RawStmt{Text: "class Expr;"}}})
	if strings.Contains(got, "namespace") {
		t.Errorf("unexpected namespace wrapper, got %q", got)
	}
}
