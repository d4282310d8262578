package codeobj

import "treegen/internal/emit"

// TypeName is a bare type reference: a primitive word, an extern type name,
// or a node's generated class name, optionally followed by '*' or '&'
// suffixes the caller has already baked into Name.
type TypeName struct {
	Name string
}

func (t TypeName) Codegen(e *emit.Emitter) { e.Write(t.Name) }

// TemplatedType is "Base<Arg, Arg, ...>", for wrappers such as
// std::vector<T> or std::tuple<A, B, C>. internal/cgen's type translation
// does not use it: list and pointer spellings there come from the target's
// text templates and are rendered as a TypeName.
//
// Every adjacent pair of arguments is joined with ", ". The tool this is
// adapted from joined arguments with a separator that was only inserted
// before the *last* argument, silently concatenating earlier ones
// (std::tuple<AB, C> instead of std::tuple<A, B, C>) whenever there were more
// than two; that bug is not reproduced here.
type TemplatedType struct {
	Base string
	Args []Node
}

func (t TemplatedType) Codegen(e *emit.Emitter) {
	e.Write(t.Base)
	e.Write("<")
	for i, arg := range t.Args {
		if i > 0 {
			e.Write(", ")
		}
		arg.Codegen(e)
	}
	e.Write(">")
}

// Param is one "Type name" function parameter.
type Param struct {
	Type Node
	Name string
}

func (p Param) Codegen(e *emit.Emitter) {
	p.Type.Codegen(e)
	e.Write(" ")
	e.Write(p.Name)
}
