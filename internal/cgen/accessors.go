package cgen

import (
	"treegen/internal/codeobj"
	"treegen/internal/model"
)

// buildAccessorDefs emits one out-of-line getter and setter per field of
// every node, per spec.md §4.8 step 8.
func (t *Target) buildAccessorDefs() []codeobj.Node {
	var items []codeobj.Node
	for _, n := range t.declOrderNodes() {
		for _, f := range n.Fields {
			items = append(items, t.buildGetterDef(n, f), t.buildSetterDef(n, f))
		}
	}
	return items
}

func (t *Target) buildGetterDef(n *model.Node, f *model.Field) codeobj.Node {
	fieldType := t.translateType(f.Type, f.Weak)
	return codeobj.MethodDef{
		ReturnType: fieldType,
		ClassName:  n.Name,
		Name:       "get_" + f.Name,
		Const:      true,
		Body:       []codeobj.Node{codeobj.RawStmt{Text: "return " + f.Name + ";"}},
	}
}

// buildSetterDef releases the field's previous value (for a non-weak
// node/extern/list field) before assigning the new one. The parameter is
// always named "value"; the assignment's left side is qualified with
// "this->" only when the field itself happens to be named "value", to
// resolve that exact collision.
func (t *Target) buildSetterDef(n *model.Node, f *model.Field) codeobj.Node {
	fieldType := t.translateType(f.Type, f.Weak)
	fieldName := f.Name
	if fieldName == "value" {
		fieldName = "this->" + fieldName
	}
	var body []codeobj.Node
	body = append(body, t.releaseStmts(f)...)
	body = append(body, codeobj.RawStmt{Text: fieldName + " = value;"})
	return codeobj.MethodDef{
		ReturnType: codeobj.TypeName{Name: "void"},
		ClassName:  n.Name,
		Name:       "set_" + f.Name,
		Params:     []codeobj.Param{{Type: fieldType, Name: "value"}},
		Body:       body,
	}
}
