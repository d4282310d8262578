package targetschema

import "treegen/internal/model"

// GetOpt returns the schema-validated value bound to name, or the zero
// BoundValue if name was never declared in this schema (a programmer error
// in the emitter calling it, not a spec-file mistake — every schema option
// always gets a value, defaulted or explicit, during Bind).
func (b *Bound) GetOpt(name string) BoundValue {
	return b.Values[name]
}

// GetExtOpt returns a passthrough option not declared in the schema,
// available only for schemas with AllowExtra set.
func (b *Bound) GetExtOpt(name string) (model.OptionValue, bool) {
	v, ok := b.ExtOpts[name]
	return v, ok
}

// Bool, Int, Float, Str, and StrList are convenience shortcuts over GetOpt
// for the common case of reading one option's value directly.
func (b *Bound) Bool(name string) bool        { return b.GetOpt(name).Bool }
func (b *Bound) Int(name string) int64        { return b.GetOpt(name).Int }
func (b *Bound) Float(name string) float64    { return b.GetOpt(name).Float }
func (b *Bound) Str(name string) string       { return b.GetOpt(name).Str }
func (b *Bound) StrList(name string) []string { return b.GetOpt(name).StrList }

// SetStr overrides an already-bound string option, for callers layering a
// CLI flag on top of whatever the spec file declared (e.g. --indent). It is
// a no-op if name was never bound by Bind in the first place.
func (b *Bound) SetStr(name string, v string) {
	bv, ok := b.Values[name]
	if !ok {
		return
	}
	bv.Str = v
	b.Values[name] = bv
}
