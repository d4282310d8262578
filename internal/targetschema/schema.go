// Package targetschema binds a resolved target's raw option values against
// the option schema the code emitter for that target kind expects,
// producing a Bound value the emitter can query with typed accessors
// instead of re-parsing strings itself.
package targetschema

import "treegen/internal/model"

// OptionKind is the shape an option value must take.
type OptionKind uint8

const (
	KindBool OptionKind = iota
	KindInt
	KindFloat
	KindString
	KindStringList
)

func (k OptionKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindStringList:
		return "list of string"
	default:
		return "<unknown option kind>"
	}
}

// OptionSpec declares one option a target schema accepts.
type OptionSpec struct {
	Name     string
	Kind     OptionKind
	Required bool
	// Default is used when the option is absent and not Required. Ignored
	// (and may be the zero model.OptionValue) when Required is true.
	Default model.OptionValue
}

// Schema is the full set of options one target kind accepts.
type Schema struct {
	Kind string
	// Options is keyed by option name for O(1) lookup during Bind.
	Options map[string]OptionSpec
	// AllowExtra permits options outside Options to pass through
	// unvalidated, retrievable later with Bound.GetExtOpt. Used by target
	// kinds whose emitter accepts free-form passthrough flags.
	AllowExtra bool
}

// Registry holds the built-in schema for every target kind internal/cgen
// knows how to emit. It is a package-level var, not a const map, so a
// future target kind (e.g. a second C-family dialect) can register itself
// without changing Bind's signature.
var Registry = map[string]*Schema{
	"cpp": cppSchema,
}

// Lookup returns the registered Schema for kindName, if any.
func Lookup(kindName string) (*Schema, bool) {
	s, ok := Registry[kindName]
	return s, ok
}

// cppSchema is spec.md §6's C-family option table, verbatim: names, kinds,
// and defaults match the spec's literal list (also the table the tool this
// generator is adapted from declares on its own CPlusPlusTarget). "allocator"
// and "deleter" are declared here for schema-validation parity with that
// table but are not consulted by any emission rule below, matching the
// source tool's own CPlusPlusTarget, which carries the same two options
// without ever reading them back; see DESIGN.md.
var cppSchema = &Schema{
	Kind: "cpp",
	Options: map[string]OptionSpec{
		"allocator":           {Name: "allocator", Kind: KindString, Default: model.OptionValue{Raw: "new $@"}},
		"class_extra":         {Name: "class_extra", Kind: KindStringList, Default: model.OptionValue{IsList: true}},
		"cpp_indent":          {Name: "cpp_indent", Kind: KindString, Default: model.OptionValue{Raw: " "}},
		"deleter":             {Name: "deleter", Kind: KindString, Default: model.OptionValue{Raw: "delete $$"}},
		"epilog":              {Name: "epilog", Kind: KindString, Default: model.OptionValue{Raw: ""}},
		"prolog":              {Name: "prolog", Kind: KindString, Default: model.OptionValue{Raw: ""}},
		"header_only":         {Name: "header_only", Kind: KindBool, Default: model.OptionValue{Raw: "true"}},
		"includes":            {Name: "includes", Kind: KindStringList, Default: model.OptionValue{IsList: true}},
		"indent":              {Name: "indent", Kind: KindString, Default: model.OptionValue{Raw: "    "}},
		"list_type":           {Name: "list_type", Kind: KindString, Default: model.OptionValue{Raw: "std::vector<$@>"}},
		"namespace":           {Name: "namespace", Kind: KindString, Default: model.OptionValue{Raw: ""}},
		"strong_ptr":          {Name: "strong_ptr", Kind: KindString, Default: model.OptionValue{Raw: "$@*"}},
		"weak_ptr":            {Name: "weak_ptr", Kind: KindString, Default: model.OptionValue{Raw: "$@*"}},
		"use_accessors":       {Name: "use_accessors", Kind: KindBool, Default: model.OptionValue{Raw: "false"}},
		"use_line_directives": {Name: "use_line_directives", Kind: KindBool, Default: model.OptionValue{Raw: "true"}},
	},
	// Per-extern type spellings and destructors are supplied as free-form
	// "<ExternName>_type" / "<ExternName>_destruct" options, since this
	// grammar keeps extern declarations flat rather than nesting a
	// per-target option block under each one; AllowExtra lets cgen read
	// them back with GetExtOpt without widening the schema itself.
	AllowExtra: true,
}
