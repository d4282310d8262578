package targetschema

import (
	"errors"
	"strconv"

	"treegen/internal/diag"
	"treegen/internal/model"
	"treegen/internal/source"
)

var errNotAList = errors.New("value is not a list")

// BoundValue is one option's coerced value, exactly one field of which is
// meaningful depending on the OptionSpec.Kind it was bound against.
type BoundValue struct {
	Kind    OptionKind
	Bool    bool
	Int     int64
	Float   float64
	Str     string
	StrList []string
}

// Bound is the validated, typed option set for one target declaration.
type Bound struct {
	Kind    string
	Values  map[string]BoundValue
	ExtOpts map[string]model.OptionValue
}

// Bind validates t's options against kindName's registered Schema and
// coerces each one to its declared Kind, reporting every violation to sink.
// A target not found in spec.Targets is a diag.TargetMissing warning, and
// every option is then bound to its default; an unregistered kindName is a
// fatal diag.TargetUnknown error, located at the spec's target block of that
// name if it declares one.
func Bind(spec *model.Spec, kindName string, sink *diag.Sink) (*Bound, error) {
	schema, ok := Lookup(kindName)
	if !ok {
		span := source.Span{}
		for _, candidate := range spec.Targets {
			if candidate.Name == kindName {
				span = candidate.Span
				break
			}
		}
		return nil, sink.Error(diag.TargetUnknown, span, "unknown target kind \""+kindName+"\"")
	}

	var t *model.Target
	for _, candidate := range spec.Targets {
		if candidate.Name == kindName {
			t = candidate
			break
		}
	}
	if t == nil {
		sink.Warning(diag.TargetMissing, source.Span{}, "spec file declares no \"target "+kindName+"\" block; using default options")
		t = &model.Target{Name: kindName, Options: map[string]model.OptionValue{}}
	}

	bound := &Bound{
		Kind:    kindName,
		Values:  map[string]BoundValue{},
		ExtOpts: map[string]model.OptionValue{},
	}

	for name, raw := range t.Options {
		optSpec, ok := schema.Options[name]
		if !ok {
			if schema.AllowExtra {
				bound.ExtOpts[name] = raw
				continue
			}
			sink.ErrorNonFatal(diag.SchemaUnknownOption, raw.Span, "target \""+kindName+"\" has no option \""+name+"\"")
			continue
		}
		val, err := coerce(raw, optSpec.Kind)
		if err != nil {
			sink.ErrorNonFatal(diag.SchemaBadKind, raw.Span, "option \""+name+"\" must be a "+optSpec.Kind.String()+": "+err.Error())
			continue
		}
		bound.Values[name] = val
	}

	for name, optSpec := range schema.Options {
		if _, present := bound.Values[name]; present {
			continue
		}
		if optSpec.Required {
			sink.ErrorNonFatal(diag.SchemaMissingRequired, t.Span, "target \""+kindName+"\" is missing required option \""+name+"\"")
			continue
		}
		val, err := coerce(deepCopyDefault(optSpec.Default), optSpec.Kind)
		if err != nil {
			// A bad built-in default is a programmer error in this package's
			// own schema table, not a spec-file mistake.
			panic("targetschema: invalid default for option " + name + ": " + err.Error())
		}
		bound.Values[name] = val
	}

	return bound, nil
}

func coerce(raw model.OptionValue, kind OptionKind) (BoundValue, error) {
	if kind == KindStringList {
		if !raw.IsList {
			return BoundValue{}, errNotAList
		}
		out := make([]string, 0, len(raw.Items))
		for _, item := range raw.Items {
			out = append(out, item.Raw)
		}
		return BoundValue{Kind: kind, StrList: out}, nil
	}

	switch kind {
	case KindBool:
		b, err := strconv.ParseBool(raw.Raw)
		if err != nil {
			return BoundValue{}, err
		}
		return BoundValue{Kind: kind, Bool: b}, nil
	case KindInt:
		i, err := strconv.ParseInt(raw.Raw, 10, 64)
		if err != nil {
			return BoundValue{}, err
		}
		return BoundValue{Kind: kind, Int: i}, nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw.Raw, 64)
		if err != nil {
			return BoundValue{}, err
		}
		return BoundValue{Kind: kind, Float: f}, nil
	case KindString:
		return BoundValue{Kind: kind, Str: raw.Raw}, nil
	default:
		return BoundValue{}, errNotAList
	}
}

func deepCopyDefault(v model.OptionValue) model.OptionValue {
	if !v.IsList {
		return v
	}
	items := make([]model.OptionValue, len(v.Items))
	copy(items, v.Items)
	return model.OptionValue{Span: v.Span, IsList: true, Items: items}
}
