// Package ast defines the parse tree produced by internal/parser: the
// syntactic shape of a spec file before names are resolved. Every node
// carries a source.Span so later phases can anchor diagnostics and line
// directives back to the spec file that produced them.
package ast

import "treegen/internal/source"

// File is the root of a parsed spec file.
type File struct {
	Span    source.Span
	Externs []*Extern
	Targets []*Target
	Visitor *Visitor // nil if the spec file declares no visitor block
	Root    *RootDecl
	Nodes   []*Node
}
