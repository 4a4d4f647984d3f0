package codec

import (
	"context"

	gomold "github.com/reoring/gomold"
)

// Identity returns a Transformer[T,T] that passes values through
// unchanged, for spots where a transformer is required but no mapping is
// wanted.
func Identity[T any]() gomold.Transformer[T, T] {
	return identity[T]{}
}

type identity[T any] struct{}

func (identity[T]) Decode(_ context.Context, wire T) (T, error)  { return wire, nil }
func (identity[T]) Encode(_ context.Context, value T) (T, error) { return value, nil }
