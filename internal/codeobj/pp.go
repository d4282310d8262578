package codeobj

import (
	"strconv"

	"treegen/internal/emit"
)

// Define is "#define Name Value" (Value == "" renders a bare "#define Name").
type Define struct {
	Name  string
	Value string
}

func (d Define) Codegen(e *emit.Emitter) {
	if d.Value == "" {
		e.WritePPLine("#define " + d.Name)
		return
	}
	e.WritePPLine("#define " + d.Name + " " + d.Value)
}

// Ifdef is "#ifdef Name". Pair with an Endif; bumps the preprocessor indent
// for everything emitted between this and its Endif.
type Ifdef struct{ Name string }

func (i Ifdef) Codegen(e *emit.Emitter) {
	e.WritePPLine("#ifdef " + i.Name)
	e.IndentPP()
}

// Ifndef is "#ifndef Name". Pair with an Endif; bumps the preprocessor
// indent for everything emitted between this and its Endif.
type Ifndef struct{ Name string }

func (i Ifndef) Codegen(e *emit.Emitter) {
	e.WritePPLine("#ifndef " + i.Name)
	e.IndentPP()
}

// If is "#if Cond". Pair with an Endif; bumps the preprocessor indent for
// everything emitted between this and its Endif.
type If struct{ Cond string }

func (i If) Codegen(e *emit.Emitter) {
	e.WritePPLine("#if " + i.Cond)
	e.IndentPP()
}

// Elif is "#elif Cond", rendered at the same indent as the If/Ifdef/Ifndef
// it continues.
type Elif struct{ Cond string }

func (i Elif) Codegen(e *emit.Emitter) {
	e.UnindentPP()
	e.WritePPLine("#elif " + i.Cond)
	e.IndentPP()
}

// Else is "#else", rendered at the same indent as the conditional it
// continues.
type Else struct{}

func (Else) Codegen(e *emit.Emitter) {
	e.UnindentPP()
	e.WritePPLine("#else")
	e.IndentPP()
}

// Endif is "#endif"; unindents back to the level before its matching
// If/Ifdef/Ifndef.
type Endif struct{}

func (Endif) Codegen(e *emit.Emitter) {
	e.UnindentPP()
	e.WritePPLine("#endif")
}

// Line is a "#line N \"file\"" directive, re-anchoring the generated output
// to a location in the spec source so a compiler's diagnostics and a
// debugger's stepping point back at the spec file instead of the generated
// one. File == "" omits the filename portion, re-anchoring the line number
// only.
type Line struct {
	LineNum uint32
	File    string
}

func (l Line) Codegen(e *emit.Emitter) {
	if l.File == "" {
		e.WritePPLine("#line " + strconv.FormatUint(uint64(l.LineNum), 10))
		return
	}
	e.WritePPLine("#line " + strconv.FormatUint(uint64(l.LineNum), 10) + " \"" + l.File + "\"")
}

// LineWrap brackets Inner with a #line directive pointing at (SrcFile,
// SrcLine) before it, and a reset #line pointing back at OutFile after it.
// The reset line number is read from the emitter right after Inner has been
// rendered, not computed ahead of time, since it depends on how many output
// lines Inner actually produced.
//
// The reset points at the emitter's output line plus one, not the line it
// just finished on: the tool this is adapted from re-anchors one line past
// the position it has actually reached, and that off-by-one is preserved
// here rather than corrected.
type LineWrap struct {
	SrcFile string
	SrcLine uint32
	OutFile string
	Inner   Node
}

func (w LineWrap) Codegen(e *emit.Emitter) {
	Line{LineNum: w.SrcLine, File: w.SrcFile}.Codegen(e)
	w.Inner.Codegen(e)
	Line{LineNum: uint32(e.OutputLine() + 1), File: w.OutFile}.Codegen(e) //nolint:gosec // output line never approaches uint32 overflow
}
