package cgen

import (
	"strings"
	"testing"

	"treegen/internal/diag"
	"treegen/internal/emit"
	"treegen/internal/parser"
	"treegen/internal/sema"
	"treegen/internal/source"
	"treegen/internal/targetschema"
)

const shapesSpec = `
target cpp {
  namespace: "ast";
  use_line_directives: true;
  Position_destruct: "$$.release()";
}

extern Position;

visitor ShapeVisitor;

root Shape;

abstract node Shape {
  loc: Position;
  (loc);
}

node Circle : Shape {
  radius: float;
  (radius);
}

node Group : Shape {
  weak children: list Shape;
}
`

func buildSpec(t *testing.T, src string) (*Target, *diag.Sink, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("shapes.tree", []byte(src))
	sink := diag.NewSink(diag.NewBag(100), fs)

	p := parser.New(fs.Get(id), sink)
	file, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	res, err := sema.Check(file, sink, sema.Options{})
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if sink.Failed() {
		t.Fatalf("unexpected diagnostics after Check: %d", sink.Bag().Len())
	}

	bound, err := targetschema.Bind(res.Spec, "cpp", sink)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	if sink.Failed() {
		t.Fatalf("unexpected diagnostics after Bind: %d", sink.Bag().Len())
	}

	return New(res.Spec, bound, sink, fs, "shapes.gen.h"), sink, fs
}

func TestBuildEmitsClassesAndDestructors(t *testing.T) {
	target, sink, _ := buildSpec(t, shapesSpec)

	tu := target.Build()
	if sink.Failed() {
		t.Fatalf("unexpected diagnostics after Build: %d", sink.Bag().Len())
	}

	e := emit.New(target.bound.Str("indent"))
	tu.Codegen(e)
	got := e.String()

	if !strings.Contains(got, "namespace ast {") {
		t.Errorf("missing namespace, got:\n%s", got)
	}
	if !strings.Contains(got, "struct Shape;") {
		t.Errorf("missing forward declaration, got:\n%s", got)
	}
	if !strings.Contains(got, "class Circle : public Shape {") {
		t.Errorf("missing derived class header, got:\n%s", got)
	}
	if !strings.Contains(got, "class ShapeVisitor {") {
		t.Errorf("missing visitor class, got:\n%s", got)
	}
	if !strings.Contains(got, "virtual void visit(Circle& node)") {
		t.Errorf("missing visit overload, got:\n%s", got)
	}
	if !strings.Contains(got, "void accept(ShapeVisitor& visitor)") {
		t.Errorf("missing accept method, got:\n%s", got)
	}
	if !strings.Contains(got, "Circle(Position loc, float radius) : Shape(loc), radius_(radius)") &&
		!strings.Contains(got, "Circle(Position loc, float radius) : Shape(loc), radius(radius)") {
		t.Errorf("missing constructor with chained init list, got:\n%s", got)
	}
	if !strings.Contains(got, "Shape::~Shape() {") {
		t.Errorf("missing out-of-line destructor, got:\n%s", got)
	}
	if strings.Contains(got, "$$.release()") {
		t.Error("destruct template should have been substituted, not left literal")
	}
	if !strings.Contains(got, "loc.release();") {
		t.Errorf("expected substituted extern destructor call, got:\n%s", got)
	}
	if strings.Contains(got, "delete treegen_elem") {
		t.Errorf("weak list field must not be released, got:\n%s", got)
	}
	if !strings.Contains(got, "#line") {
		t.Errorf("expected #line directives when use_line_directives is true, got:\n%s", got)
	}
}

func TestBuildOmitsAccessorsByDefault(t *testing.T) {
	target, sink, _ := buildSpec(t, shapesSpec)
	tu := target.Build()
	if sink.Failed() {
		t.Fatalf("unexpected diagnostics: %d", sink.Bag().Len())
	}
	e := emit.New(target.bound.Str("indent"))
	tu.Codegen(e)
	got := e.String()
	if strings.Contains(got, "get_radius") {
		t.Errorf("accessors should be disabled by default, got:\n%s", got)
	}
}

func TestBuildEmitsAccessorsWhenEnabled(t *testing.T) {
	target, sink, _ := buildSpec(t, strings.Replace(shapesSpec, "Position_destruct", "use_accessors: true;\n  Position_destruct", 1))
	tu := target.Build()
	if sink.Failed() {
		t.Fatalf("unexpected diagnostics: %d", sink.Bag().Len())
	}
	e := emit.New(target.bound.Str("indent"))
	tu.Codegen(e)
	got := e.String()
	if !strings.Contains(got, "return radius;") {
		t.Errorf("getter for a field not named \"value\" should return it unqualified, got:\n%s", got)
	}
	if strings.Contains(got, "this->radius") {
		t.Errorf("accessor for field \"radius\" must never qualify with this->, got:\n%s", got)
	}
	if !strings.Contains(got, "set_radius(float value)") {
		t.Errorf("setter parameter must always be named \"value\", got:\n%s", got)
	}
	if !strings.Contains(got, "radius = value;") {
		t.Errorf("setter body should assign unqualified field = value, got:\n%s", got)
	}
}

func TestBuildComposesInheritedCtorArgsAcrossChain(t *testing.T) {
	src := `
target cpp {
  namespace: "ast";
}

root Base;

node Base {
  a: int;
  (a);
}

node Leaf : Base {
  b: int;
  (b);
}
`
	target, sink, _ := buildSpec(t, src)
	tu := target.Build()
	if sink.Failed() {
		t.Fatalf("unexpected diagnostics: %d", sink.Bag().Len())
	}
	e := emit.New(target.bound.Str("indent"))
	tu.Codegen(e)
	got := e.String()
	if !strings.Contains(got, "Leaf(int a, int b) : Base(a), b(b)") {
		t.Errorf("expected Leaf's ctor to compose Base's inherited parameter, got:\n%s", got)
	}
}
