// Package codeobj is the target-independent code-object tree: a closed set
// of IR node kinds representing C-family source constructs (namespaces,
// classes, methods, preprocessor directives) that internal/cgen builds from
// a resolved internal/model.Spec and then renders with internal/emit.
// Keeping an IR between the resolved spec and the emitted text, rather than
// printing directly, is the same separation the teacher's backend/llvm
// package uses for its own target.
package codeobj

import "treegen/internal/emit"

// Node is implemented by every code-object kind. Codegen renders the node
// into e, indenting and tracking output lines as it goes.
type Node interface {
	Codegen(e *emit.Emitter)
}

// TranslationUnit is the root of a generated file: an ordered sequence of
// top-level code objects (includes, a namespace, forward declarations,
// class definitions, ...).
type TranslationUnit struct {
	Items []Node
}

func (tu *TranslationUnit) Codegen(e *emit.Emitter) {
	for _, item := range tu.Items {
		item.Codegen(e)
	}
}
