package targetschema

import (
	"testing"

	"treegen/internal/diag"
	"treegen/internal/model"
	"treegen/internal/source"
)

func newSink() *diag.Sink {
	return diag.NewSink(diag.NewBag(100), source.NewFileSet())
}

func TestBindAppliesDefaults(t *testing.T) {
	spec := &model.Spec{Targets: []*model.Target{{Name: "cpp", Options: map[string]model.OptionValue{}}}}
	sink := newSink()

	bound, err := Bind(spec, "cpp", sink)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	if sink.Failed() {
		t.Fatalf("unexpected diagnostics: %d", sink.Bag().Len())
	}
	if bound.Str("indent") != "    " {
		t.Errorf("indent default = %q, want %q", bound.Str("indent"), "    ")
	}
	if !bound.Bool("use_line_directives") {
		t.Errorf("use_line_directives default = false, want true")
	}
	if !bound.Bool("header_only") {
		t.Errorf("header_only default = false, want true")
	}
	if bound.Bool("use_accessors") {
		t.Errorf("use_accessors default = true, want false")
	}
}

func TestBindCoercesExplicitValues(t *testing.T) {
	spec := &model.Spec{Targets: []*model.Target{{
		Name: "cpp",
		Options: map[string]model.OptionValue{
			"namespace": {Raw: "ast"},
			"indent":    {Raw: "\t"},
		},
	}}}
	sink := newSink()

	bound, err := Bind(spec, "cpp", sink)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	if bound.Str("namespace") != "ast" {
		t.Errorf("namespace = %q, want %q", bound.Str("namespace"), "ast")
	}
	if bound.Str("indent") != "\t" {
		t.Errorf("indent = %q, want %q", bound.Str("indent"), "\t")
	}
}

func TestBindReportsUnknownOption(t *testing.T) {
	// cpp's schema sets AllowExtra so per-extern "<Name>_type" passthrough
	// options don't trip this check; exercise the strict path against a
	// schema with AllowExtra unset instead.
	Registry["teststrict"] = &Schema{
		Kind: "teststrict",
		Options: map[string]OptionSpec{
			"known": {Name: "known", Kind: KindString, Default: model.OptionValue{Raw: ""}},
		},
	}
	defer delete(Registry, "teststrict")

	spec := &model.Spec{Targets: []*model.Target{{
		Name:    "teststrict",
		Options: map[string]model.OptionValue{"bogus": {Raw: "x"}},
	}}}
	sink := newSink()

	if _, err := Bind(spec, "teststrict", sink); err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	if !sink.Bag().HasErrors() {
		t.Fatalf("expected a SchemaUnknownOption diagnostic")
	}
}

func TestBindAllowsExternPassthroughOptions(t *testing.T) {
	spec := &model.Spec{Targets: []*model.Target{{
		Name:    "cpp",
		Options: map[string]model.OptionValue{"Token_type": {Raw: "TokenKind"}},
	}}}
	sink := newSink()

	bound, err := Bind(spec, "cpp", sink)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	if sink.Bag().HasErrors() {
		t.Fatalf("unexpected diagnostics for a passthrough extern option")
	}
	v, ok := bound.GetExtOpt("Token_type")
	if !ok || v.Raw != "TokenKind" {
		t.Fatalf("GetExtOpt(%q) = (%v, %v), want (%q, true)", "Token_type", v, ok, "TokenKind")
	}
}

func TestBindReportsBadKind(t *testing.T) {
	spec := &model.Spec{Targets: []*model.Target{{
		Name:    "cpp",
		Options: map[string]model.OptionValue{"use_accessors": {Raw: "not-a-bool"}},
	}}}
	sink := newSink()

	if _, err := Bind(spec, "cpp", sink); err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	if !sink.Bag().HasErrors() {
		t.Fatalf("expected a SchemaBadKind diagnostic")
	}
}

func TestBindWarnsAndUsesDefaultsWhenNoBlockDeclared(t *testing.T) {
	spec := &model.Spec{}
	sink := newSink()

	bound, err := Bind(spec, "cpp", sink)
	if err != nil {
		t.Fatalf("Bind() error = %v, want nil", err)
	}
	if sink.Failed() || sink.Bag().Len() != 1 {
		t.Fatalf("want exactly one TargetMissing warning and no error, got %d diagnostics", sink.Bag().Len())
	}
	if bound.Str("indent") != "    " {
		t.Errorf("indent = %q, want the default %q", bound.Str("indent"), "    ")
	}
}

func TestBindReturnsTargetUnknownForUnregisteredKind(t *testing.T) {
	spec := &model.Spec{Targets: []*model.Target{{Name: "java"}}}
	sink := newSink()

	_, err := Bind(spec, "java", sink)
	if err != diag.ErrAborted {
		t.Fatalf("Bind() error = %v, want diag.ErrAborted", err)
	}
}
