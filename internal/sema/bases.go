package sema

import "treegen/internal/model"

// resolveBases links each node to its resolved Base pointer and rejects
// inheritance cycles. A node's base must itself already be a declared node
// (never an extern or primitive).
func (c *checker) resolveBases() error {
	for _, astNode := range c.file.Nodes {
		n, ok := c.spec.Nodes[astNode.Name]
		if !ok || astNode.Base == "" {
			continue
		}
		base, ok := c.spec.Nodes[astNode.Base]
		if !ok {
			c.sink.ErrorNonFatal(codeUnresolvedBase, astNode.BaseSpan, "unresolved base node \""+astNode.Base+"\"")
			continue
		}
		n.Base = base
	}

	for _, n := range c.spec.Nodes {
		if hasBaseCycle(n) {
			c.sink.ErrorNonFatal(codeBaseCycle, n.Span, "node \""+n.Name+"\" participates in a base-reference cycle")
			n.Base = nil // break the cycle so later passes can still walk the graph
		}
	}
	return nil
}

func hasBaseCycle(n *model.Node) bool {
	slow, fast := n, n
	for fast != nil && fast.Base != nil {
		slow = slow.Base
		fast = fast.Base.Base
		if slow == fast {
			return true
		}
	}
	return false
}
