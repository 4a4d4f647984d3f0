package gomold

import (
	"context"
	"reflect"
	"time"

	"github.com/reoring/gomold/internal/coerce"
	"github.com/reoring/gomold/internal/meta"
)

var timeType = reflect.TypeOf(time.Time{})

// decodeInto walks the schema over tree and fills v, an addressable struct
// value. Defaults have already been applied by the caller. Any failure from
// the walk comes back wrapped as a decode_type link for this schema's type.
func (c *schemaCore) decodeInto(ctx context.Context, tree map[string]any, v reflect.Value, rep Report) error {
	for i := range c.fields {
		if err := c.decodeField(ctx, tree, v, &c.fields[i], rep); err != nil {
			return wrapType(c.name, err)
		}
	}
	for _, fi := range c.rest {
		if err := c.decodeRest(ctx, tree, v, fi, rep); err != nil {
			return wrapType(c.name, err)
		}
	}
	return nil
}

// decodeField runs the value pipeline for one declared field: resolve the
// raw value, convert it through the adapter, apply overrides, check
// validations, assign. Resolution and conversion failures are absorbed for
// optional fields and for required fields with a default; validation
// failures always propagate.
func (c *schemaCore) decodeField(ctx context.Context, tree map[string]any, v reflect.Value, f *Field, rep Report) error {
	fail := func(cause error) error {
		if f.Optional {
			rep[f.goName] = OutcomeSkippedOptional
			return nil
		}
		if f.Default != nil {
			rep[f.goName] = OutcomeDefaultedOnFailure
			return nil
		}
		return wrapProperty(c.name, f.goName, f.Key, cause)
	}

	raw, found := resolveDecode(tree, f.Key)
	if f.Debug {
		debugDump(c.name, f.goName, f.Key, raw, found)
	}
	if !found || raw == nil {
		return fail(ErrMissingValue())
	}
	out, err := f.Adapter.Decode(ctx, raw, f.Mode)
	if err != nil {
		return fail(err)
	}
	for _, m := range f.Modifiers {
		if m.override != nil {
			out = m.override(out)
		}
	}
	for _, m := range f.Modifiers {
		if m.validate != nil && !m.validate(out) {
			return wrapProperty(c.name, f.goName, f.Key, ErrValidationFailed(c.name, f.goName, out))
		}
	}
	dst := fieldByIndexAlloc(v, f.index)
	if err := setValue(dst, reflect.ValueOf(out)); err != nil {
		return wrapProperty(c.name, f.goName, f.Key, err)
	}
	rep[f.goName] = OutcomeAssigned
	return nil
}

// decodeRest handles fields without a declaration. On a derived schema every
// field participates; on a registered schema only struct-typed fields whose
// type carries its own registered schema do.
func (c *schemaCore) decodeRest(ctx context.Context, tree map[string]any, v reflect.Value, fi meta.FieldInfo, rep Report) error {
	ft := fi.Type
	base := ft
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if !c.derived {
		if base.Kind() != reflect.Struct {
			return nil
		}
		if _, ok := lookupExplicit(base); !ok {
			return nil
		}
	}
	optional := nilableKind(ft.Kind())
	raw, found := resolveDecode(tree, fi.Key)
	if !found || raw == nil {
		if optional {
			rep[fi.Name] = OutcomeSkippedOptional
			return nil
		}
		return wrapProperty(c.name, fi.Name, fi.Key, ErrMissingValue())
	}
	val, err := decodeReflect(ctx, raw, ft, ModeStrict)
	if err != nil {
		if optional {
			rep[fi.Name] = OutcomeSkippedOptional
			return nil
		}
		return wrapProperty(c.name, fi.Name, fi.Key, err)
	}
	fieldByIndexAlloc(v, fi.Index).Set(val)
	rep[fi.Name] = OutcomeAssigned
	return nil
}

// decodeReflect decodes raw into a freshly built value of type t, driven by
// reflection alone. It backs derived schemas and automatic nested fields.
func decodeReflect(ctx context.Context, raw any, t reflect.Type, mode DecodeMode) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		if raw == nil {
			return reflect.Zero(t), nil
		}
		ev, err := decodeReflect(ctx, raw, t.Elem(), mode)
		if err != nil {
			return reflect.Value{}, err
		}
		pv := reflect.New(t.Elem())
		pv.Elem().Set(ev)
		return pv, nil
	}
	if raw == nil {
		return reflect.Value{}, ErrInvalidValue()
	}
	if t == timeType {
		return decodeTime(raw)
	}
	lossless := mode == ModeLossless
	switch t.Kind() {
	case reflect.String:
		s, ok := coerce.String(raw, lossless)
		if !ok {
			return reflect.Value{}, ErrInvalidValue()
		}
		return reflect.ValueOf(s).Convert(t), nil
	case reflect.Bool:
		b, ok := coerce.Bool(raw, lossless)
		if !ok {
			return reflect.Value{}, ErrInvalidValue()
		}
		out := reflect.New(t).Elem()
		out.SetBool(b)
		return out, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := coerce.Int(raw, scalarBits(t.Kind()), lossless)
		if !ok {
			return reflect.Value{}, ErrInvalidValue()
		}
		out := reflect.New(t).Elem()
		out.SetInt(i)
		return out, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, ok := coerce.Uint(raw, scalarBits(t.Kind()), lossless)
		if !ok {
			return reflect.Value{}, ErrInvalidValue()
		}
		out := reflect.New(t).Elem()
		out.SetUint(u)
		return out, nil
	case reflect.Float32, reflect.Float64:
		fl, ok := coerce.Float(raw, scalarBits(t.Kind()), lossless)
		if !ok {
			return reflect.Value{}, ErrInvalidValue()
		}
		out := reflect.New(t).Elem()
		out.SetFloat(fl)
		return out, nil
	case reflect.Slice:
		arr, ok := raw.([]any)
		if !ok {
			return reflect.Value{}, ErrInvalidValue()
		}
		drop := mode == ModeLossy || mode == ModeLossless
		elemMode := mode
		if elemMode == ModeLossy {
			elemMode = ModeStrict
		}
		out := reflect.MakeSlice(t, 0, len(arr))
		for _, el := range arr {
			ev, err := decodeReflect(ctx, el, t.Elem(), elemMode)
			if err != nil {
				if drop {
					continue
				}
				return reflect.Value{}, err
			}
			out = reflect.Append(out, ev)
		}
		return out, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return reflect.Value{}, ErrInvalidValue()
		}
		m, ok := raw.(map[string]any)
		if !ok {
			return reflect.Value{}, ErrInvalidValue()
		}
		out := reflect.MakeMapWithSize(t, len(m))
		for k, el := range m {
			ev, err := decodeReflect(ctx, el, t.Elem(), mode)
			if err != nil {
				return reflect.Value{}, err
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), ev)
		}
		return out, nil
	case reflect.Struct:
		m, ok := raw.(map[string]any)
		if !ok {
			return reflect.Value{}, ErrInvalidValue()
		}
		cc, err := coreFor(t)
		if err != nil {
			return reflect.Value{}, WrapError(err)
		}
		inst := reflect.New(t).Elem()
		cc.applyDefaults(inst)
		if derr := cc.decodeInto(ctx, m, inst, Report{}); derr != nil {
			return reflect.Value{}, derr
		}
		return inst, nil
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return reflect.ValueOf(raw), nil
		}
	}
	return reflect.Value{}, ErrInvalidValue()
}

// decodeTime is the declaration-free time handling: RFC 3339 text, matching
// what the rest of the Go ecosystem emits. Other layouts need a transformer
// from the codec package.
func decodeTime(raw any) (reflect.Value, error) {
	s, ok := raw.(string)
	if !ok {
		return reflect.Value{}, ErrInvalidValue()
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return reflect.ValueOf(ts), nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return reflect.ValueOf(ts), nil
	}
	return reflect.Value{}, ErrInvalidDate(s)
}

func (c *schemaCore) applyDefaults(v reflect.Value) {
	for i := range c.fields {
		f := &c.fields[i]
		if f.Default == nil {
			continue
		}
		_ = setValue(fieldByIndexAlloc(v, f.index), reflect.ValueOf(f.Default))
	}
}

func scalarBits(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 8
	case reflect.Int16, reflect.Uint16:
		return 16
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 32
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 64
	}
	return 0
}

func nilableKind(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}

// fieldByIndexAlloc walks an index path for writing, allocating intermediate
// embedded pointers as needed.
func fieldByIndexAlloc(v reflect.Value, index []int) reflect.Value {
	for n, i := range index {
		if n > 0 {
			if v.Kind() == reflect.Pointer {
				if v.IsNil() {
					v.Set(reflect.New(v.Type().Elem()))
				}
				v = v.Elem()
			}
		}
		v = v.Field(i)
	}
	return v
}

// fieldByIndexRead walks an index path for reading; a nil embedded pointer
// reports false instead of allocating.
func fieldByIndexRead(v reflect.Value, index []int) (reflect.Value, bool) {
	for n, i := range index {
		if n > 0 {
			if v.Kind() == reflect.Pointer {
				if v.IsNil() {
					return reflect.Value{}, false
				}
				v = v.Elem()
			}
		}
		v = v.Field(i)
	}
	return v, true
}

// setValue stores src into dst, converting between same-kind named types
// and wrapping into a pointer as needed. The zero Value, as produced by an
// adapter returning a nil interface, is rejected as invalid.
func setValue(dst reflect.Value, src reflect.Value) error {
	if !src.IsValid() {
		return ErrInvalidValue()
	}
	st, dt := src.Type(), dst.Type()
	switch {
	case st.AssignableTo(dt):
		dst.Set(src)
		return nil
	case st.ConvertibleTo(dt) && st.Kind() == dt.Kind():
		dst.Set(src.Convert(dt))
		return nil
	}
	if dt.Kind() == reflect.Pointer {
		pv := reflect.New(dt.Elem())
		if err := setValue(pv.Elem(), src); err != nil {
			return err
		}
		dst.Set(pv)
		return nil
	}
	return ErrInvalidValue()
}
