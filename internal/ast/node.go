package ast

import "treegen/internal/source"

// Node is one "node Name [: Base] { ... }" declaration.
type Node struct {
	Span     source.Span
	Name     string
	NameSpan source.Span
	Abstract bool
	Base     string // "" if the node has no explicit base
	BaseSpan source.Span
	Fields   []*Field
	Ctors    []*CtorDecl
}

// Field is a single "[weak] name: Type;" member declaration. A field whose
// Type is a ListType may itself be marked Weak, in which case every element
// of the list is a non-owning reference (spec.md's "weak list T" rule).
type Field struct {
	Span     source.Span
	Name     string
	NameSpan source.Span
	Weak     bool
	Type     TypeRef
}

// CtorDecl is a "(arg, arg, ...);" declaration naming, in order, the
// fields (inherited or declared on this node) that the generated
// constructor should accept and initialize.
type CtorDecl struct {
	Span source.Span
	Args []CtorArg
}

// CtorArg is one identifier inside a ctor(...) argument list.
type CtorArg struct {
	Span source.Span
	Name string
}

// TypeRef is an unresolved reference to a field's type, exactly as spelled
// in the spec file. internal/sema resolves Name against the node, extern,
// and primitive namespaces to produce a model.FieldType.
type TypeRef struct {
	Span source.Span
	// List reports whether the spec wrote "list T" for this type.
	List bool
	// ListSpan is the span of the "list" keyword, valid only if List.
	ListSpan source.Span
	// Name is the element type name: a primitive word (bool/int/float/
	// string), an extern name, or a node name.
	Name     string
	NameSpan source.Span
}
