package sema

import "treegen/internal/model"

// gatherNodes allocates a *model.Node for every "node Name ..." declaration
// up front, before any field or base is resolved, so forward references
// (a field or base naming a node declared later in the file) resolve
// correctly. A redeclared node name is a non-fatal error, with a note at the
// first declaration; the first declaration wins and later ones are skipped
// entirely (their fields are never added, matching spec.md's "first
// declaration wins" resolution for every duplicate-name case). A node named
// like an already-gathered extern is also a non-fatal error; the extern keeps
// the name and the node is skipped.
func (c *checker) gatherNodes() error {
	for _, n := range c.file.Nodes {
		if first, dup := c.spec.Nodes[n.Name]; dup {
			c.sink.ErrorNonFatal(codeDuplicateNode, n.NameSpan, "node \""+n.Name+"\" already declared")
			c.sink.Note(codeDuplicateNode, first.Span, "first declaration of \""+n.Name+"\" is here")
			continue
		}
		if _, clash := c.spec.Externs[n.Name]; clash {
			c.sink.ErrorNonFatal(codeDuplicateNode, n.NameSpan, "node \""+n.Name+"\" has the same name as an extern")
			continue
		}
		c.spec.Nodes[n.Name] = &model.Node{
			Name:     n.Name,
			Span:     n.Span,
			Abstract: n.Abstract,
		}
	}
	return nil
}
