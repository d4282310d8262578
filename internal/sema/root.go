package sema

import "treegen/internal/model"

// resolveVisitorAndRoot copies the visitor declaration over verbatim (it
// names no other entity) and resolves the root declaration's name against
// the node namespace.
func (c *checker) resolveVisitorAndRoot() error {
	if c.file.Visitor != nil {
		c.spec.Visitor = &model.Visitor{Name: c.file.Visitor.Name, Span: c.file.Visitor.Span}
	}

	if c.file.Root == nil {
		return nil
	}
	root, ok := c.spec.Nodes[c.file.Root.Name]
	if !ok {
		c.sink.ErrorNonFatal(codeUnresolvedRoot, c.file.Root.NameSpan, "unresolved root node \""+c.file.Root.Name+"\"")
		return nil
	}
	c.spec.Root = root
	return nil
}
