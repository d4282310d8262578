package cgen

import (
	"treegen/internal/codeobj"
	"treegen/internal/model"
)

func (t *Target) buildForwardDecls() []codeobj.Node {
	var items []codeobj.Node
	for _, n := range t.declOrderNodes() {
		items = append(items, codeobj.ClassDecl{Name: n.Name, Forward: true})
	}
	return items
}

// declOrderNodes returns every node in the order it was declared in the
// spec file. Spec.Nodes is a map, so this walks the AST-preserved order
// captured at resolve time via each node's source span.
func (t *Target) declOrderNodes() []*model.Node {
	nodes := make([]*model.Node, 0, len(t.spec.Nodes))
	for _, n := range t.spec.Nodes {
		nodes = append(nodes, n)
	}
	sortNodesBySpan(nodes)
	return nodes
}

func sortNodesBySpan(nodes []*model.Node) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && nodes[j].Span.Start < nodes[j-1].Span.Start; j-- {
			nodes[j], nodes[j-1] = nodes[j-1], nodes[j]
		}
	}
}

func (t *Target) buildVisitorClass() codeobj.Node {
	v := t.spec.Visitor
	members := make([]codeobj.Node, 0, len(t.spec.Nodes))
	for _, n := range t.declOrderNodes() {
		members = append(members, codeobj.InlineMethod{
			ReturnType: codeobj.TypeName{Name: "void"},
			Name:       "visit",
			Params:     []codeobj.Param{{Type: codeobj.TypeName{Name: n.Name + "&"}, Name: "node"}},
			Virtual:    true,
			Body:       nil,
		})
	}
	return t.wrapLines(v.Span, codeobj.ClassDecl{Name: v.Name, Members: members})
}

func (t *Target) buildNodeClasses() []codeobj.Node {
	var items []codeobj.Node
	for _, n := range t.declOrderNodes() {
		items = append(items, t.buildNodeClass(n))
	}
	return items
}

func (t *Target) buildNodeClass(n *model.Node) codeobj.Node {
	var bases []string
	if n.Base != nil {
		bases = []string{n.Base.Name}
	}

	var members []codeobj.Node
	for _, f := range n.Fields {
		field := codeobj.Field{Type: t.translateType(f.Type, f.Weak), Name: f.Name}
		members = append(members, t.wrapLines(f.Span, field))
	}
	if n.Ctor != nil {
		members = append(members, t.wrapLines(n.Ctor.Span, t.buildCtor(n)))
	}
	members = append(members, codeobj.DtorDecl{ClassName: n.Name, Virtual: true})
	if t.spec.Visitor != nil {
		members = append(members, codeobj.InlineMethod{
			ReturnType: codeobj.TypeName{Name: "void"},
			Name:       "accept",
			Params:     []codeobj.Param{{Type: codeobj.TypeName{Name: t.spec.Visitor.Name + "&"}, Name: "visitor"}},
			Body:       []codeobj.Node{codeobj.RawStmt{Text: "visitor.visit(*this);"}},
		})
	}
	if t.bound.Bool("use_accessors") {
		for _, f := range n.Fields {
			members = append(members, t.buildAccessorDecls(n, f)...)
		}
	}

	var extra []codeobj.Node
	for _, line := range t.bound.StrList("class_extra") {
		extra = append(extra, codeobj.RawStmt{Text: line})
	}

	class := codeobj.ClassDecl{Name: n.Name, Bases: bases, Abstract: n.Abstract, Members: members, Extra: extra}
	return t.wrapLines(n.Span, class)
}

func (t *Target) buildAccessorDecls(n *model.Node, f *model.Field) []codeobj.Node {
	fieldType := t.translateType(f.Type, f.Weak)
	return []codeobj.Node{
		codeobj.MethodDecl{ReturnType: fieldType, Name: "get_" + f.Name, Const: true},
		codeobj.MethodDecl{
			ReturnType: codeobj.TypeName{Name: "void"},
			Name:       "set_" + f.Name,
			Params:     []codeobj.Param{{Type: fieldType, Name: "value"}},
		},
	}
}

// composedCtorArgs walks n's base chain root-most first, composing each
// ancestor's own declared ctor args before appending n's own, per spec.md
// §8 scenario 3: a derived node's ctor need only list its own new fields,
// and the generated constructor still takes every inherited parameter too.
func composedCtorArgs(n *model.Node) []*model.Field {
	if n == nil || n.Ctor == nil {
		return nil
	}
	var args []*model.Field
	args = append(args, composedCtorArgs(n.Base)...)
	args = append(args, n.Ctor.Args...)
	return args
}

// buildCtor renders n's single constructor. The full parameter list is n's
// composed chain (composedCtorArgs); the base class is constructed by
// forwarding the base's own composed chain, and n's own fields (those in
// n.Ctor.Args that belong to n itself) are initialized directly.
func (t *Target) buildCtor(n *model.Node) codeobj.Node {
	own := make(map[*model.Field]bool, len(n.Fields))
	for _, f := range n.Fields {
		own[f] = true
	}

	full := composedCtorArgs(n)
	params := make([]codeobj.Param, 0, len(full))
	for _, f := range full {
		params = append(params, codeobj.Param{Type: t.translateType(f.Type, f.Weak), Name: f.Name})
	}

	var inits []codeobj.Node
	if n.Base != nil {
		baseArgs := composedCtorArgs(n.Base)
		if len(baseArgs) > 0 {
			baseInitArgs := make([]codeobj.Node, 0, len(baseArgs))
			for _, f := range baseArgs {
				baseInitArgs = append(baseInitArgs, codeobj.InitArg{Text: f.Name})
			}
			inits = append(inits, codeobj.BaseInit{Base: n.Base.Name, Args: baseInitArgs})
		}
	}
	for _, f := range n.Ctor.Args {
		if own[f] {
			inits = append(inits, codeobj.InitExpr{Member: f.Name, Args: []codeobj.Node{codeobj.InitArg{Text: f.Name}}})
		}
	}

	return codeobj.Ctor{ClassName: n.Name, Params: params, Inits: inits}
}
