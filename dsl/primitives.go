package dsl

import (
	"context"
	"time"

	gomold "github.com/reoring/gomold"
	"github.com/reoring/gomold/codec"
	"github.com/reoring/gomold/internal/coerce"
)

// String returns the type for JSON strings. Lossless mode additionally
// renders numbers and booleans into their literal text.
func String() Type[string] {
	return Type[string]{
		decode: func(_ context.Context, raw any, mode gomold.DecodeMode) (string, error) {
			s, ok := coerce.String(raw, mode == gomold.ModeLossless)
			if !ok {
				return "", gomold.ErrInvalidValue()
			}
			return s, nil
		},
		encode: func(_ context.Context, v string) (any, error) { return v, nil },
	}
}

// Bool returns the type for JSON booleans. Lossless mode additionally
// accepts "true", "false", 1 and 0.
func Bool() Type[bool] {
	return Type[bool]{
		decode: func(_ context.Context, raw any, mode gomold.DecodeMode) (bool, error) {
			b, ok := coerce.Bool(raw, mode == gomold.ModeLossless)
			if !ok {
				return false, gomold.ErrInvalidValue()
			}
			return b, nil
		},
		encode: func(_ context.Context, v bool) (any, error) { return v, nil },
	}
}

// Int returns the type for whole JSON numbers. Lossless mode additionally
// accepts integral text and floats without a fractional part.
func Int() Type[int]     { return intType[int](0) }
func Int8() Type[int8]   { return intType[int8](8) }
func Int16() Type[int16] { return intType[int16](16) }
func Int32() Type[int32] { return intType[int32](32) }
func Int64() Type[int64] { return intType[int64](64) }

// Uint returns the unsigned counterpart of Int.
func Uint() Type[uint]     { return uintType[uint](0) }
func Uint8() Type[uint8]   { return uintType[uint8](8) }
func Uint16() Type[uint16] { return uintType[uint16](16) }
func Uint32() Type[uint32] { return uintType[uint32](32) }
func Uint64() Type[uint64] { return uintType[uint64](64) }

// Float32 returns the type for JSON numbers. Lossless mode additionally
// accepts numeric text.
func Float32() Type[float32] { return floatType[float32](32) }
func Float64() Type[float64] { return floatType[float64](64) }

func intType[T ~int | ~int8 | ~int16 | ~int32 | ~int64](bits int) Type[T] {
	return Type[T]{
		decode: func(_ context.Context, raw any, mode gomold.DecodeMode) (T, error) {
			i, ok := coerce.Int(raw, bits, mode == gomold.ModeLossless)
			if !ok {
				var zero T
				return zero, gomold.ErrInvalidValue()
			}
			return T(i), nil
		},
		encode: func(_ context.Context, v T) (any, error) { return int64(v), nil },
	}
}

func uintType[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](bits int) Type[T] {
	return Type[T]{
		decode: func(_ context.Context, raw any, mode gomold.DecodeMode) (T, error) {
			u, ok := coerce.Uint(raw, bits, mode == gomold.ModeLossless)
			if !ok {
				var zero T
				return zero, gomold.ErrInvalidValue()
			}
			return T(u), nil
		},
		encode: func(_ context.Context, v T) (any, error) { return uint64(v), nil },
	}
}

func floatType[T ~float32 | ~float64](bits int) Type[T] {
	return Type[T]{
		decode: func(_ context.Context, raw any, mode gomold.DecodeMode) (T, error) {
			f, ok := coerce.Float(raw, bits, mode == gomold.ModeLossless)
			if !ok {
				var zero T
				return zero, gomold.ErrInvalidValue()
			}
			return T(f), nil
		},
		encode: func(_ context.Context, v T) (any, error) { return float64(v), nil },
	}
}

// SliceOf returns the type for JSON arrays of elem. The field mode cascades
// into the elements: lossless decodes each element losslessly and drops the
// ones that still fail, lossy decodes each element strictly and drops
// failures, strict fails the whole array on the first bad element.
func SliceOf[E any](elem Type[E]) Type[[]E] {
	return Type[[]E]{
		decode: func(ctx context.Context, raw any, mode gomold.DecodeMode) ([]E, error) {
			arr, ok := raw.([]any)
			if !ok {
				return nil, gomold.ErrInvalidValue()
			}
			drop := mode == gomold.ModeLossless || mode == gomold.ModeLossy
			elemMode := mode
			if elemMode == gomold.ModeLossy {
				elemMode = gomold.ModeStrict
			}
			out := make([]E, 0, len(arr))
			for _, el := range arr {
				if el == nil {
					if drop {
						continue
					}
					return nil, gomold.ErrInvalidValue()
				}
				ev, err := elem.decode(ctx, el, elemMode)
				if err != nil {
					if drop {
						continue
					}
					return nil, err
				}
				out = append(out, ev)
			}
			return out, nil
		},
		encode: func(ctx context.Context, v []E) (any, error) {
			out := make([]any, 0, len(v))
			for _, e := range v {
				w, err := elem.encode(ctx, e)
				if err != nil {
					return nil, err
				}
				out = append(out, w)
			}
			return out, nil
		},
	}
}

// MapOf returns the type for JSON objects with uniform values. Values
// decode in the field's mode, except that lossy degrades to strict; maps
// never drop entries.
func MapOf[V any](elem Type[V]) Type[map[string]V] {
	return Type[map[string]V]{
		decode: func(ctx context.Context, raw any, mode gomold.DecodeMode) (map[string]V, error) {
			m, ok := raw.(map[string]any)
			if !ok {
				return nil, gomold.ErrInvalidValue()
			}
			if mode == gomold.ModeLossy {
				mode = gomold.ModeStrict
			}
			out := make(map[string]V, len(m))
			for k, el := range m {
				ev, err := elem.decode(ctx, el, mode)
				if err != nil {
					return nil, err
				}
				out[k] = ev
			}
			return out, nil
		},
		encode: func(ctx context.Context, v map[string]V) (any, error) {
			out := make(map[string]any, len(v))
			for k, e := range v {
				w, err := elem.encode(ctx, e)
				if err != nil {
					return nil, err
				}
				out[k] = w
			}
			return out, nil
		},
	}
}

// Time reads the wire value as a string and maps it through tr. The codec
// package carries transformers for the common layouts.
func Time(tr gomold.Transformer[string, time.Time]) Type[time.Time] {
	return Transformed(String(), tr)
}

// UnixTime reads a numeric seconds-since-epoch timestamp, fractional
// seconds included.
func UnixTime() Type[time.Time] {
	return Transformed(Float64(), codec.Unix())
}
