package sema

import (
	"treegen/internal/ast"
	"treegen/internal/model"
)

var primitiveWords = map[string]model.PrimitiveKind{
	"bool":   model.PrimBool,
	"int":    model.PrimInt,
	"float":  model.PrimFloat,
	"string": model.PrimString,
}

// resolveFieldTypes resolves every field's TypeRef against the primitive,
// node, and extern namespaces, in that order. A node can never be named
// "int", and a node and an extern never share a name (gatherNodes rejects
// the clash and the extern keeps it), so at most one namespace matches.
func (c *checker) resolveFieldTypes() error {
	for _, astNode := range c.file.Nodes {
		n, ok := c.spec.Nodes[astNode.Name]
		if !ok {
			continue // shadowed duplicate, already reported
		}
		for _, astField := range astNode.Fields {
			ft, ok := c.resolveTypeRef(astField.Type)
			if !ok {
				continue
			}
			n.Fields = append(n.Fields, &model.Field{
				Name: astField.Name,
				Span: astField.Span,
				Weak: astField.Weak,
				Type: ft,
			})
		}
	}
	return nil
}

func (c *checker) resolveTypeRef(t ast.TypeRef) (model.FieldType, bool) {
	ft := model.FieldType{List: t.List}

	if prim, ok := primitiveWords[t.Name]; ok {
		ft.Kind = model.KindPrimitive
		ft.Primitive = prim
		return ft, true
	}
	if n, ok := c.spec.Nodes[t.Name]; ok {
		ft.Kind = model.KindNode
		ft.NodeRef = n
		return ft, true
	}
	if e, ok := c.spec.Externs[t.Name]; ok {
		ft.Kind = model.KindExtern
		ft.ExternRef = e
		return ft, true
	}

	code := codeUnresolvedField
	if t.List {
		code = codeUnresolvedList
	}
	c.sink.ErrorNonFatal(code, t.NameSpan, "unresolved type \""+t.Name+"\"")
	return model.FieldType{}, false
}
