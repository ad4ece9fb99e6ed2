package driftscript

import "fmt"

// ValueType describes the cached structured form a Value may carry. A
// value tagged with a type owns exactly one structured payload produced by
// that type; the four operations let the generic value code manage the
// payload without knowing its shape.
type ValueType struct {
	// Name identifies the type in diagnostics.
	Name string

	// FreeIntRep releases the structured payload. The value's tag and
	// payload fields are cleared by the caller afterwards. May be nil when
	// the payload needs no cleanup.
	FreeIntRep func(v *Value)

	// DupIntRep copies src's payload into dup, which has no structured
	// form yet. The caller tags dup with the type afterwards. When nil,
	// the payload reference is shared.
	DupIntRep func(src, dup *Value)

	// UpdateString regenerates the value's string form from the payload.
	// Must be set for any type whose values can outlive their original
	// string form.
	UpdateString func(v *Value)

	// SetFromString parses the value's string form into a payload of this
	// type, replacing any previous structured form. Types that cannot be
	// produced from a bare string leave the value untouched and return an
	// error.
	SetFromString func(in *Interp, v *Value) error
}

// Value is a dual-representation value: a string form plus an optional
// cached structured form tagged with the ValueType that produced it. At
// least one of the two forms is always present, and when both are present
// they are semantically equivalent.
//
// Values are not safe for concurrent mutation; callers sharing a value
// across goroutines must synchronize externally.
type Value struct {
	bytes  []byte
	typ    *ValueType
	intRep interface{}
}

// NewValue creates a value holding s as its string form.
func NewValue(s string) *Value {
	return &Value{bytes: []byte(s)}
}

// NewValues creates a vector of string values, one per argument.
func NewValues(ss ...string) []*Value {
	vals := make([]*Value, len(ss))
	for i, s := range ss {
		vals[i] = NewValue(s)
	}
	return vals
}

// String returns the value's string form, regenerating it from the
// structured form if it has been invalidated.
func (v *Value) String() string {
	if v.bytes == nil && v.typ != nil && v.typ.UpdateString != nil {
		v.typ.UpdateString(v)
	}
	return string(v.bytes)
}

// SetString replaces the string form and discards any structured form,
// since the two would no longer agree.
func (v *Value) SetString(s string) {
	v.FreeIntRep()
	v.bytes = []byte(s)
}

// InvalidateString drops the string form so it will be regenerated from
// the structured form on the next String call. Only legal on values that
// carry a structured form.
func (v *Value) InvalidateString() {
	if v.typ == nil {
		panic("driftscript: InvalidateString on value without structured form")
	}
	v.bytes = nil
}

// Type returns the descriptor of the structured form, or nil if the value
// only has a string form.
func (v *Value) Type() *ValueType {
	return v.typ
}

// IntRep returns the structured payload, nil if none.
func (v *Value) IntRep() interface{} {
	return v.intRep
}

// SetIntRep installs a structured form, discarding the previous one first
// so that no payload outlives its replacement.
func (v *Value) SetIntRep(typ *ValueType, rep interface{}) {
	if typ == nil {
		panic("driftscript: SetIntRep with nil type")
	}
	v.FreeIntRep()
	v.typ = typ
	v.intRep = rep
}

// FreeIntRep discards the structured form, if any, invoking the type's
// release operation first.
func (v *Value) FreeIntRep() {
	if v.typ != nil && v.typ.FreeIntRep != nil {
		v.typ.FreeIntRep(v)
	}
	v.typ = nil
	v.intRep = nil
}

// Copy returns an independent duplicate. The string form is copied; the
// structured form is duplicated through its type's DupIntRep operation.
func (v *Value) Copy() *Value {
	dup := &Value{}
	if v.bytes != nil {
		dup.bytes = append([]byte(nil), v.bytes...)
	}
	if v.typ != nil {
		if v.typ.DupIntRep != nil {
			v.typ.DupIntRep(v, dup)
		} else {
			dup.intRep = v.intRep
		}
		dup.typ = v.typ
	}
	return dup
}

// ConvertTo coerces the value to typ through its SetFromString operation.
// A value already tagged with typ is left alone.
func (v *Value) ConvertTo(in *Interp, typ *ValueType) error {
	if v.typ == typ {
		return nil
	}
	if typ.SetFromString == nil {
		return fmt.Errorf("values of type %s cannot be converted from a string", typ.Name)
	}
	return typ.SetFromString(in, v)
}
