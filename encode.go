package gomold

import (
	"context"
	"reflect"
	"time"

	"github.com/reoring/gomold/internal/meta"
)

// encodeInto walks the schema over v and writes wire values into tree.
// Encoding is exact: no coercion runs and any failure propagates as is.
func (c *schemaCore) encodeInto(ctx context.Context, v reflect.Value, tree map[string]any) error {
	for i := range c.fields {
		if err := c.encodeField(ctx, v, &c.fields[i], tree); err != nil {
			return err
		}
	}
	for _, fi := range c.rest {
		if err := c.encodeRest(ctx, v, fi, tree); err != nil {
			return err
		}
	}
	return nil
}

func (c *schemaCore) encodeField(ctx context.Context, v reflect.Value, f *Field, tree map[string]any) error {
	fv, ok := fieldByIndexRead(v, f.index)
	if !ok {
		return nil
	}
	if f.ptr {
		if fv.IsNil() {
			if f.EncodeNull {
				parent, leaf := resolveEncode(tree, f.Key)
				parent[leaf] = nil
			}
			return nil
		}
		if f.Adapter.Target.Kind() != reflect.Pointer {
			fv = fv.Elem()
		}
	}
	in := fv
	if t := f.Adapter.Target; in.Type() != t && in.Type().ConvertibleTo(t) {
		in = in.Convert(t)
	}
	wire, err := f.Adapter.Encode(ctx, in.Interface())
	if err != nil {
		return err
	}
	parent, leaf := resolveEncode(tree, f.Key)
	parent[leaf] = wire
	return nil
}

func (c *schemaCore) encodeRest(ctx context.Context, v reflect.Value, fi meta.FieldInfo, tree map[string]any) error {
	base := fi.Type
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
	fv, ok := fieldByIndexRead(v, fi.Index)
	if !ok {
		return nil
	}
	for fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}
	wire, err := encodeReflect(ctx, fv)
	if err != nil {
		return err
	}
	parent, leaf := resolveEncode(tree, fi.Key)
	parent[leaf] = wire
	return nil
}

// encodeReflect turns a Go value into the generic tree shape every driver
// can marshal: map[string]any, []any, string, bool, int64, uint64, float64.
func encodeReflect(ctx context.Context, v reflect.Value) (any, error) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Type() == timeType {
		return v.Interface().(time.Time).UTC().Format(time.RFC3339Nano), nil
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil, nil
		}
		out := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			el, err := encodeReflect(ctx, v.Index(i))
			if err != nil {
				return nil, err
			}
			out = append(out, el)
		}
		return out, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, ErrInvalidValue()
		}
		if v.IsNil() {
			return nil, nil
		}
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			el, err := encodeReflect(ctx, iter.Value())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = el
		}
		return out, nil
	case reflect.Struct:
		cc, err := coreFor(v.Type())
		if err != nil {
			return nil, WrapError(err)
		}
		tree := map[string]any{}
		if eerr := cc.encodeInto(ctx, v, tree); eerr != nil {
			return nil, eerr
		}
		return tree, nil
	case reflect.Interface:
		if v.IsNil() {
			return nil, nil
		}
		return encodeReflect(ctx, v.Elem())
	}
	return nil, ErrInvalidValue()
}
