package ast

import "treegen/internal/source"

// Literal is a constant value written directly into a spec file: an option
// value inside a target block, or an item of a list literal. The concrete types below
// are the closed set of literal forms the grammar accepts.
type Literal interface {
	literalSpan() source.Span
}

// IntLiteral is a decimal, hex, octal, or binary integer literal.
type IntLiteral struct {
	Span  source.Span
	Value int64
}

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	Span  source.Span
	Value float64
}

// StringLiteral is a double-quoted string literal. Value has already had its
// doubled-delimiter escapes collapsed to single quote characters.
type StringLiteral struct {
	Span  source.Span
	Value string
}

// CharLiteral is a single-quoted character literal.
type CharLiteral struct {
	Span  source.Span
	Value rune
}

// BoolLiteral is the 'true' or 'false' keyword used as a value.
type BoolLiteral struct {
	Span  source.Span
	Value bool
}

// NullLiteral is the 'null' keyword used as a value.
type NullLiteral struct {
	Span source.Span
}

// ListLiteral is a "[ v, v, v ]" literal, used for list-typed option
// values.
type ListLiteral struct {
	Span  source.Span
	Items []Literal
}

func (l IntLiteral) literalSpan() source.Span    { return l.Span }
func (l FloatLiteral) literalSpan() source.Span  { return l.Span }
func (l StringLiteral) literalSpan() source.Span { return l.Span }
func (l CharLiteral) literalSpan() source.Span   { return l.Span }
func (l BoolLiteral) literalSpan() source.Span   { return l.Span }
func (l NullLiteral) literalSpan() source.Span   { return l.Span }
func (l ListLiteral) literalSpan() source.Span   { return l.Span }

// Span returns the source span a Literal value occupies.
func Span(l Literal) source.Span { return l.literalSpan() }
