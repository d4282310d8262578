package sema

import (
	"strconv"

	"treegen/internal/ast"
	"treegen/internal/model"
)

// toOptionValue renders lit as a model.OptionValue. Every scalar becomes its
// unquoted string form (model.OptionValue's doc comment explains why); only
// a list literal keeps its structure.
func toOptionValue(lit ast.Literal) model.OptionValue {
	switch v := lit.(type) {
	case ast.IntLiteral:
		return model.OptionValue{Span: v.Span, Raw: strconv.FormatInt(v.Value, 10)}
	case ast.FloatLiteral:
		return model.OptionValue{Span: v.Span, Raw: strconv.FormatFloat(v.Value, 'g', -1, 64)}
	case ast.StringLiteral:
		return model.OptionValue{Span: v.Span, Raw: v.Value}
	case ast.CharLiteral:
		return model.OptionValue{Span: v.Span, Raw: string(v.Value)}
	case ast.BoolLiteral:
		return model.OptionValue{Span: v.Span, Raw: strconv.FormatBool(v.Value)}
	case ast.NullLiteral:
		return model.OptionValue{Span: v.Span, Raw: ""}
	case ast.ListLiteral:
		items := make([]model.OptionValue, 0, len(v.Items))
		for _, item := range v.Items {
			items = append(items, toOptionValue(item))
		}
		return model.OptionValue{Span: v.Span, IsList: true, Items: items}
	default:
		return model.OptionValue{}
	}
}
