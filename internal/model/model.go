// Package model holds the resolved form of a spec file: the same entities
// internal/ast parses, but with every name replaced by a direct pointer (or
// a concrete primitive/extern marker) once internal/sema has verified it
// refers to something real. Spec is the sole owner of every *Node it
// reaches; every other pointer a Node or FieldType holds back into the
// graph is a non-owning reference, same as the generated C++ the spec
// describes (spec.md §3).
package model

import "treegen/internal/source"

// Spec is the fully resolved spec file: every node, extern, target, and the
// visitor/root declarations, ready to hand to internal/targetschema and
// internal/cgen.
type Spec struct {
	Externs map[string]*Extern
	Nodes   map[string]*Node
	Targets []*Target
	Visitor *Visitor // nil if the spec declares no visitor
	Root    *Node    // nil if the spec declares no root
}

// Extern is an opaque type name borrowed from the target language.
type Extern struct {
	Name string
	Span source.Span
}

// Node is one resolved node type. Base, if non-nil, is a non-owning
// reference into Spec.Nodes.
type Node struct {
	Name     string
	Span     source.Span
	Abstract bool
	Base     *Node // nil for a root-level node
	Fields   []*Field
	Ctor     *ConstructorSig // nil if the node declares no constructor
}

// AllFields returns Fields prefixed with every ancestor's Fields, root-most
// first, matching the order the generated constructor initializes members
// in.
func (n *Node) AllFields() []*Field {
	if n.Base == nil {
		return append([]*Field(nil), n.Fields...)
	}
	return append(n.Base.AllFields(), n.Fields...)
}

// IsDescendantOf reports whether n is other or derives from it, transitively.
func (n *Node) IsDescendantOf(other *Node) bool {
	for cur := n; cur != nil; cur = cur.Base {
		if cur == other {
			return true
		}
	}
	return false
}

// Field is one resolved member of a node.
type Field struct {
	Name string
	Span source.Span
	Weak bool
	Type FieldType
}

// FieldType is the resolved type of a field: Kind selects which one of
// Primitive, ExternRef, or NodeRef is valid, optionally wrapped in a list.
type FieldType struct {
	List bool

	Primitive PrimitiveKind // valid if Kind == KindPrimitive
	ExternRef *Extern       // non-owning; valid if Kind == KindExtern
	NodeRef   *Node         // non-owning; valid if Kind == KindNode
	Kind      FieldTypeKind
}

// FieldTypeKind discriminates FieldType's payload.
type FieldTypeKind uint8

const (
	KindPrimitive FieldTypeKind = iota
	KindExtern
	KindNode
)

// PrimitiveKind enumerates the grammar's built-in scalar types.
type PrimitiveKind uint8

const (
	PrimBool PrimitiveKind = iota
	PrimInt
	PrimFloat
	PrimString
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimBool:
		return "bool"
	case PrimInt:
		return "int"
	case PrimFloat:
		return "float"
	case PrimString:
		return "string"
	default:
		return "<unknown primitive>"
	}
}

// ConstructorSig is the resolved argument list of a node's constructor: each
// entry is a non-owning reference to one of the node's reachable fields
// (its own, or inherited from Base).
type ConstructorSig struct {
	Span source.Span
	Args []*Field
}

// Visitor marks that a visitor interface should be generated.
type Visitor struct {
	Name string
	Span source.Span
}

// Target is one resolved code-generation target, still holding its raw
// (unbound) option declarations; internal/targetschema.Bind turns this into
// a *targetschema.Bound.
type Target struct {
	Name    string
	Span    source.Span
	Options map[string]OptionValue
}

// OptionValue is a resolved option literal. Every scalar value — whether the
// spec wrote it as a bare int, float, bool, or quoted string — is stored as
// its unquoted Go string rendering in Raw; only a "[ ... ]" literal keeps a
// structured Items slice. internal/targetschema re-parses Raw against each
// option's declared kind when binding; this string-first representation
// mirrors the tool this resolver is adapted from, which never carried
// literal type tags past the parser.
type OptionValue struct {
	Span  source.Span
	IsList bool
	Raw   string // valid when !IsList
	Items []OptionValue // valid when IsList
}
