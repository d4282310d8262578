package ast

import "treegen/internal/source"

// Extern declares an opaque type name the spec borrows from the target
// language without describing its shape (e.g. a hand-written string or
// numeric type the generated header should simply reference by name).
type Extern struct {
	Span source.Span
	Name string
	// NameSpan is the span of just the identifier, used by diagnostics that
	// need to point at the name rather than the whole declaration.
	NameSpan source.Span
}

// Target declares one code-generation target ("cpp", "csharp", ...) along
// with the option values bound against that target's schema.
type Target struct {
	Span     source.Span
	Name     string
	NameSpan source.Span
	Options  []*OptionDecl
}

// OptionDecl is a single "key: value;" entry inside a target block.
type OptionDecl struct {
	Span     source.Span
	Key      string
	KeySpan  source.Span
	Value    Literal
}

// Visitor declares that a visitor interface should be generated over every
// concrete node type.
type Visitor struct {
	Span source.Span
	Name string
}

// RootDecl names the node type that every other node directly or
// transitively derives from.
type RootDecl struct {
	Span     source.Span
	Name     string
	NameSpan source.Span
}
