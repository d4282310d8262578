package sema

import "treegen/internal/model"

// resolveTargets copies each "target Name { ... }" block into a
// model.Target, converting every option's literal value with
// toOptionValue. internal/targetschema is responsible for validating that
// the option set matches a given target kind's schema.
func (c *checker) resolveTargets() error {
	seen := map[string]bool{}
	for _, t := range c.file.Targets {
		if seen[t.Name] {
			c.sink.ErrorNonFatal(codeDuplicateTarget, t.NameSpan, "target \""+t.Name+"\" already declared")
			continue
		}
		seen[t.Name] = true

		mt := &model.Target{
			Name:    t.Name,
			Span:    t.Span,
			Options: map[string]model.OptionValue{},
		}
		for _, opt := range t.Options {
			mt.Options[opt.Key] = toOptionValue(opt.Value)
		}
		c.spec.Targets = append(c.spec.Targets, mt)
	}
	return nil
}
