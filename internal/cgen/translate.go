package cgen

import (
	"strings"

	"treegen/internal/codeobj"
	"treegen/internal/model"
)

// substitute applies spec.md §4.9's template substitution: "$@" is replaced
// by typeSpelling, "$$" by name. Both are literal string replacements, never
// general macro expansion.
func substitute(template, typeSpelling, name string) string {
	out := strings.ReplaceAll(template, "$@", typeSpelling)
	out = strings.ReplaceAll(out, "$$", name)
	return out
}

// externTypeName returns the C++ spelling for an extern type: the target's
// "<Name>_type" passthrough option if the spec author supplied one,
// otherwise the extern's own declared name.
func (t *Target) externTypeName(ext *model.Extern) string {
	if v, ok := t.bound.GetExtOpt(ext.Name + "_type"); ok {
		return v.Raw
	}
	return ext.Name
}

// externDestructTemplate returns the "$$"-templated release expression for
// an extern type, or "" if the spec author didn't declare one (meaning the
// type needs no explicit destruction).
func (t *Target) externDestructTemplate(ext *model.Extern) string {
	if v, ok := t.bound.GetExtOpt(ext.Name + "_destruct"); ok {
		return v.Raw
	}
	return ""
}

// elementSpelling returns the C++ type spelling for a single (non-list)
// field-type payload: a primitive's fixed mapping, a node's strong/weak
// pointer template, or an extern's configured type.
func (t *Target) elementSpelling(ft model.FieldType, weak bool) string {
	switch ft.Kind {
	case model.KindPrimitive:
		return primitiveSpelling(ft.Primitive)
	case model.KindNode:
		tmpl := t.bound.Str("strong_ptr")
		if weak {
			tmpl = t.bound.Str("weak_ptr")
		}
		return substitute(tmpl, ft.NodeRef.Name, "")
	case model.KindExtern:
		return t.externTypeName(ft.ExternRef)
	default:
		return "void"
	}
}

func primitiveSpelling(p model.PrimitiveKind) string {
	switch p {
	case model.PrimBool:
		return "bool"
	case model.PrimInt:
		return "int"
	case model.PrimFloat:
		return "float"
	case model.PrimString:
		return "std::string"
	default:
		return "void"
	}
}

// translateType renders a field's full declared type, including the
// list_type wrapper when the field is a list.
func (t *Target) translateType(ft model.FieldType, weak bool) codeobj.Node {
	elem := t.elementSpelling(ft, weak)
	if !ft.List {
		return codeobj.TypeName{Name: elem}
	}
	listTmpl := t.bound.Str("list_type")
	return codeobj.TypeName{Name: substitute(listTmpl, elem, "")}
}
