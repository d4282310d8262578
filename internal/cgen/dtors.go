package cgen

import (
	"treegen/internal/codeobj"
	"treegen/internal/model"
)

// releaseStmts returns the statements that release a field's current
// value: a node reference is deleted, an extern with a "<Name>_destruct"
// template is released via that template (substituting "$$" with the
// field name), a list releases each element the same way, and anything
// else (a primitive, or an extern with no destruct template) needs no
// explicit release.
func (t *Target) releaseStmts(f *model.Field) []codeobj.Node {
	if f.Weak {
		return nil
	}
	ft := f.Type
	if ft.List {
		switch ft.Kind {
		case model.KindNode:
			return []codeobj.Node{codeobj.DeleteStmt{Target: f.Name, Range: true}}
		case model.KindExtern:
			if tmpl := t.externDestructTemplate(ft.ExternRef); tmpl != "" {
				return []codeobj.Node{codeobj.RawStmt{
					Text: "for (auto& treegen_elem : " + f.Name + ") " + substitute(tmpl, "", "treegen_elem") + ";",
				}}
			}
		}
		return nil
	}

	switch ft.Kind {
	case model.KindNode:
		return []codeobj.Node{codeobj.DeleteStmt{Target: f.Name}}
	case model.KindExtern:
		if tmpl := t.externDestructTemplate(ft.ExternRef); tmpl != "" {
			return []codeobj.Node{codeobj.RawStmt{Text: substitute(tmpl, "", f.Name) + ";"}}
		}
	}
	return nil
}

// buildDtorDefs emits one out-of-line destructor definition per node,
// releasing each of its own (not inherited) non-weak fields. Inherited
// fields are released by the base class's own destructor, reached through
// the virtual destructor chain.
func (t *Target) buildDtorDefs() []codeobj.Node {
	var items []codeobj.Node
	for _, n := range t.declOrderNodes() {
		var body []codeobj.Node
		for _, f := range n.Fields {
			body = append(body, t.releaseStmts(f)...)
		}
		items = append(items, codeobj.DtorDef{ClassName: n.Name, Body: body})
	}
	return items
}
