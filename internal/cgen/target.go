// Package cgen is the C-family target emitter: it walks a resolved
// internal/model.Spec plus its bound internal/targetschema options and
// builds the internal/codeobj tree spec.md §4.8 describes, ready to render
// with internal/emit.
package cgen

import (
	"path/filepath"
	"strings"
	"unicode"

	"treegen/internal/codeobj"
	"treegen/internal/diag"
	"treegen/internal/model"
	"treegen/internal/source"
	"treegen/internal/targetschema"
)

// Target builds one C-family translation unit from a resolved spec.
type Target struct {
	spec    *model.Spec
	bound   *targetschema.Bound
	sink    *diag.Sink
	fileSet *source.FileSet
	outPath string
}

// New constructs a Target ready to Build. outPath names the file the
// generated text will be written to; it appears only in #line directives
// and the include guard.
func New(spec *model.Spec, bound *targetschema.Bound, sink *diag.Sink, fileSet *source.FileSet, outPath string) *Target {
	return &Target{spec: spec, bound: bound, sink: sink, fileSet: fileSet, outPath: outPath}
}

// Build produces the full translation unit per spec.md §4.8's ten steps.
func (t *Target) Build() *codeobj.TranslationUnit {
	var items []codeobj.Node

	items = append(items, codeobj.RawStmt{Text: "// Code generated by gentree. DO NOT EDIT."})

	guard := t.includeGuardName()
	if guard != "" {
		items = append(items,
			codeobj.Ifndef{Name: guard},
			codeobj.Define{Name: guard, Value: "1"},
		)
	}

	items = append(items, t.buildIncludes()...)

	namespaceName := t.bound.Str("namespace")
	var body []codeobj.Node
	body = append(body, t.buildForwardDecls()...)
	if t.spec.Visitor != nil {
		body = append(body, t.buildVisitorClass())
	}
	body = append(body, t.buildNodeClasses()...)
	body = append(body, t.buildDtorDefs()...)
	if t.bound.Bool("use_accessors") {
		body = append(body, t.buildAccessorDefs()...)
	}

	items = append(items, &codeobj.Namespace{Name: namespaceName, Items: body})

	if guard != "" {
		items = append(items, codeobj.Endif{})
	}

	return &codeobj.TranslationUnit{Items: items}
}

// includeGuardName derives the include-guard macro from the output
// filename's basename per spec.md §8: non-word characters replaced by
// underscores, upcased. It is only emitted when the target is header_only.
func (t *Target) includeGuardName() string {
	if !t.bound.Bool("header_only") {
		return ""
	}
	base := filepath.Base(t.outPath)
	var b strings.Builder
	for _, r := range base {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// buildIncludes emits the fixed <string> include plus the spec's "includes"
// option; a bare entry with no angle brackets or quotes is wrapped in
// double-quotes, per spec.md §6.
func (t *Target) buildIncludes() []codeobj.Node {
	items := []codeobj.Node{codeobj.Include{Path: "string", Angled: true}}
	for _, inc := range t.bound.StrList("includes") {
		path, angled := inc, false
		switch {
		case strings.HasPrefix(inc, "<") && strings.HasSuffix(inc, ">"):
			path, angled = inc[1:len(inc)-1], true
		case strings.HasPrefix(inc, `"`) && strings.HasSuffix(inc, `"`):
			path = inc[1 : len(inc)-1]
		}
		items = append(items, codeobj.Include{Path: path, Angled: angled})
	}
	return items
}
