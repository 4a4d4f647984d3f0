package dsl

import (
	"context"
	"reflect"

	gomold "github.com/reoring/gomold"
)

// FieldType is the type-erased form a Type[T] takes when handed to Field.
// Only values built by this package implement it.
type FieldType interface {
	adapter() gomold.Adapter
}

// Type describes how one wire value becomes one Go value of type T and
// back. Values are immutable and safe to share across fields and schemas.
type Type[T any] struct {
	decode func(ctx context.Context, raw any, mode gomold.DecodeMode) (T, error)
	encode func(ctx context.Context, v T) (any, error)
}

func (t Type[T]) adapter() gomold.Adapter {
	return gomold.Adapter{
		Target: reflect.TypeFor[T](),
		Decode: func(ctx context.Context, raw any, mode gomold.DecodeMode) (any, error) {
			return t.decode(ctx, raw, mode)
		},
		Encode: func(ctx context.Context, v any) (any, error) {
			return t.encode(ctx, v.(T))
		},
	}
}

// Transformed layers a bidirectional transformer over a wire type: decoding
// reads a W with wire and maps it through tr, encoding runs the inverse.
// Transformer failures count as conversion failures of the field.
func Transformed[W, T any](wire Type[W], tr gomold.Transformer[W, T]) Type[T] {
	return Type[T]{
		decode: func(ctx context.Context, raw any, mode gomold.DecodeMode) (T, error) {
			w, err := wire.decode(ctx, raw, mode)
			if err != nil {
				var zero T
				return zero, err
			}
			return tr.Decode(ctx, w)
		},
		encode: func(ctx context.Context, v T) (any, error) {
			w, err := tr.Encode(ctx, v)
			if err != nil {
				return nil, err
			}
			return wire.encode(ctx, w)
		},
	}
}

// Nested decodes an object subtree with the schema registered (or derived)
// for T. The field's own mode does not leak into the nested fields; they
// follow their own declarations.
func Nested[T any]() Type[T] {
	return Type[T]{
		decode: func(ctx context.Context, raw any, _ gomold.DecodeMode) (T, error) {
			return gomold.Decode[T](ctx, raw)
		},
		encode: func(ctx context.Context, v T) (any, error) {
			return gomold.Encode(ctx, v)
		},
	}
}
