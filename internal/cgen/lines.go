package cgen

import (
	"treegen/internal/codeobj"
	"treegen/internal/source"
)

// wrapLines brackets inner with a #line pair pointing at span's location in
// the spec source, when line directives are enabled; otherwise it returns
// inner unchanged. Used around emission points tied to a user-visible spec
// declaration: a node, a field, a ctor, a visitor.
func (t *Target) wrapLines(span source.Span, inner codeobj.Node) codeobj.Node {
	if !t.bound.Bool("use_line_directives") {
		return inner
	}
	loc := t.fileSet.Locate(span)
	return codeobj.LineWrap{SrcFile: loc.File, SrcLine: loc.Line, OutFile: t.outPath, Inner: inner}
}
