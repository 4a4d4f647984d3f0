package gomold

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrEncodeNil indicates Encode was handed a nil pointer or nil interface.
var ErrEncodeNil = errors.New("gomold: cannot encode a nil value")

// Decode molds a decoded JSON tree (as produced by the configured driver)
// into a freshly built T using the schema registered for T. T may be the
// struct type itself or a pointer to it.
func Decode[T any](ctx context.Context, v any) (T, error) {
	c, err := coreForType[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeAs[T](ctx, c, v, Report{})
}

// DecodeWithReport is Decode plus a per-field account of what happened:
// assigned, skipped as optional, or left at its default after a failure.
// The report covers fields reached before any terminal error.
func DecodeWithReport[T any](ctx context.Context, v any) (T, Report, error) {
	rep := Report{}
	c, err := coreForType[T]()
	if err != nil {
		var zero T
		return zero, rep, err
	}
	out, err := decodeAs[T](ctx, c, v, rep)
	return out, rep, err
}

// Unmarshal parses raw bytes with the configured driver and decodes the
// resulting tree into T.
func Unmarshal[T any](ctx context.Context, data []byte) (T, error) {
	tree, err := getDriver().Unmarshal(data)
	if err != nil {
		var zero T
		return zero, WrapError(err)
	}
	return Decode[T](ctx, tree)
}

// UnmarshalWithReport is Unmarshal with the per-field report of Decode.
func UnmarshalWithReport[T any](ctx context.Context, data []byte) (T, Report, error) {
	tree, err := getDriver().Unmarshal(data)
	if err != nil {
		var zero T
		return zero, Report{}, WrapError(err)
	}
	return DecodeWithReport[T](ctx, tree)
}

// Encode turns a struct value (or non-nil pointer to one) back into a
// generic JSON tree using the schema registered for its type.
func Encode(ctx context.Context, v any) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, ErrEncodeNil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, ErrEncodeNil
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("gomold: Encode needs a struct, got %T", v)
	}
	c, err := coreFor(rv.Type())
	if err != nil {
		return nil, err
	}
	tree := map[string]any{}
	if err := c.encodeInto(ctx, rv, tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// Marshal encodes v into a tree and serializes it with the configured
// driver.
func Marshal(ctx context.Context, v any) ([]byte, error) {
	tree, err := Encode(ctx, v)
	if err != nil {
		return nil, err
	}
	return getDriver().Marshal(tree)
}

// New builds a T with every registered default already applied. Without a
// schema (or for non-struct T) it is equivalent to the zero value. A
// pointer T comes back non-nil.
func New[T any]() T {
	var zero T
	rt := reflect.TypeFor[T]()
	ptr := rt.Kind() == reflect.Pointer
	base := rt
	if ptr {
		base = rt.Elem()
	}
	if base.Kind() != reflect.Struct {
		return zero
	}
	c, err := coreFor(base)
	if err != nil {
		return zero
	}
	pv := reflect.New(base)
	c.applyDefaults(pv.Elem())
	if ptr {
		return pv.Interface().(T)
	}
	return pv.Elem().Interface().(T)
}

// ---- Schema handle methods ----

// Decode molds a decoded tree into T using this schema, regardless of what
// is currently registered for the type.
func (s *Schema[T]) Decode(ctx context.Context, v any) (T, error) {
	return decodeAs[T](ctx, s.core, v, Report{})
}

// DecodeWithReport is Decode plus the per-field outcome report.
func (s *Schema[T]) DecodeWithReport(ctx context.Context, v any) (T, Report, error) {
	rep := Report{}
	out, err := decodeAs[T](ctx, s.core, v, rep)
	return out, rep, err
}

// Unmarshal parses data with the configured driver and decodes it with
// this schema.
func (s *Schema[T]) Unmarshal(ctx context.Context, data []byte) (T, error) {
	tree, err := getDriver().Unmarshal(data)
	if err != nil {
		var zero T
		return zero, WrapError(err)
	}
	return s.Decode(ctx, tree)
}

// Encode turns v back into a generic JSON tree using this schema.
func (s *Schema[T]) Encode(ctx context.Context, v T) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, ErrEncodeNil
		}
		rv = rv.Elem()
	}
	tree := map[string]any{}
	if err := s.core.encodeInto(ctx, rv, tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// Marshal encodes v with this schema and serializes the tree with the
// configured driver.
func (s *Schema[T]) Marshal(ctx context.Context, v T) ([]byte, error) {
	tree, err := s.Encode(ctx, v)
	if err != nil {
		return nil, err
	}
	return getDriver().Marshal(tree)
}

// New builds a T with this schema's defaults applied.
func (s *Schema[T]) New() T {
	pv := reflect.New(s.core.typ)
	s.core.applyDefaults(pv.Elem())
	rt := reflect.TypeFor[T]()
	if rt.Kind() == reflect.Pointer {
		return pv.Interface().(T)
	}
	return pv.Elem().Interface().(T)
}

// ---- shared plumbing ----

func coreForType[T any]() (*schemaCore, error) {
	rt := reflect.TypeFor[T]()
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return coreFor(rt)
}

func decodeAs[T any](ctx context.Context, c *schemaCore, v any, rep Report) (T, error) {
	var zero T
	tree, ok := v.(map[string]any)
	if !ok {
		return zero, wrapType(c.name, ErrInvalidValue())
	}
	inst := reflect.New(c.typ).Elem()
	c.applyDefaults(inst)
	if err := c.decodeInto(ctx, tree, inst, rep); err != nil {
		return zero, err
	}
	rt := reflect.TypeFor[T]()
	if rt.Kind() == reflect.Pointer && rt.Elem() == c.typ {
		pv := reflect.New(c.typ)
		pv.Elem().Set(inst)
		return pv.Interface().(T), nil
	}
	return inst.Interface().(T), nil
}
