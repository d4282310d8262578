package codeobj

import "treegen/internal/emit"

// DeleteStmt releases an owning pointer field in a destructor body:
// "delete name;" for a bare owning pointer, or
// "for (auto* treegen_elem : name) delete treegen_elem;" when Range is set
// for an owning list.
type DeleteStmt struct {
	Target string
	Range  bool
}

func (d DeleteStmt) Codegen(e *emit.Emitter) {
	if d.Range {
		e.WriteLine("for (auto* treegen_elem : " + d.Target + ") delete treegen_elem;")
		return
	}
	e.WriteLine("delete " + d.Target + ";")
}

// RawStmt is a single already-formatted line of C-family source, used for
// statements and declarations the rest of the code-object tree has no
// dedicated type for (accessor bodies, banner comments, copy-through spec
// text).
type RawStmt struct {
	Text string
}

func (r RawStmt) Codegen(e *emit.Emitter) { e.WriteLine(r.Text) }
