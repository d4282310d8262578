package sema

import "treegen/internal/model"

// gatherExterns records every "extern Name;" declaration. A redeclared
// extern name is a non-fatal error; the first declaration wins.
func (c *checker) gatherExterns() error {
	for _, e := range c.file.Externs {
		if _, dup := c.spec.Externs[e.Name]; dup {
			c.sink.ErrorNonFatal(codeDuplicateExtern, e.NameSpan, "extern \""+e.Name+"\" already declared")
			continue
		}
		c.spec.Externs[e.Name] = &model.Extern{Name: e.Name, Span: e.Span}
	}
	return nil
}
