// Package sema resolves an internal/ast parse tree into a fully-linked
// internal/model.Spec: every field type, base reference, and root
// declaration is checked against the node/extern namespace and turned into
// a direct pointer. Resolution runs in seven passes, each completing before
// the next starts, mirroring the teacher's checker-with-run() shape.
package sema

import (
	"treegen/internal/ast"
	"treegen/internal/diag"
	"treegen/internal/model"
)

// Options configures a Check run. It is currently empty but kept as a
// struct, not a bare sink argument, so future flags (e.g. a strictness
// level) don't change Check's signature.
type Options struct{}

// Result is the outcome of a successful Check run.
type Result struct {
	Spec *model.Spec
}

type checker struct {
	file *ast.File
	sink *diag.Sink
	spec *model.Spec
}

// Check resolves file into a *model.Spec, reporting every unresolved
// reference, duplicate name, and reference cycle to sink. It returns
// diag.ErrAborted (wrapped by sink.Bag's contents) if a fatal diagnostic
// stopped resolution before it could finish.
func Check(file *ast.File, sink *diag.Sink, _ Options) (*Result, error) {
	c := &checker{
		file: file,
		sink: sink,
		spec: &model.Spec{
			Externs: map[string]*model.Extern{},
			Nodes:   map[string]*model.Node{},
		},
	}
	return c.run()
}

func (c *checker) run() (*Result, error) {
	if err := c.gatherExterns(); err != nil {
		return nil, err
	}
	if err := c.gatherNodes(); err != nil {
		return nil, err
	}
	if err := c.resolveFieldTypes(); err != nil {
		return nil, err
	}
	if err := c.resolveBases(); err != nil {
		return nil, err
	}
	if err := c.resolveCtors(); err != nil {
		return nil, err
	}
	if err := c.resolveVisitorAndRoot(); err != nil {
		return nil, err
	}
	if err := c.resolveTargets(); err != nil {
		return nil, err
	}
	return &Result{Spec: c.spec}, nil
}
