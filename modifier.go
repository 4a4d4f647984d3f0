package gomold

import "reflect"

// Modifier adjusts or vets a decoded value before it is assigned to its
// field. A modifier is exactly one of two kinds: an override, which rewrites
// the value, or a validation, a predicate the value must satisfy. During
// decoding all overrides run first in declaration order and every validation
// then sees the fully overridden value.
//
// Modifiers are pure: they must not keep state between calls.
type Modifier struct {
	typ      reflect.Type
	override func(any) any
	validate func(any) bool
}

// Override builds a modifier that rewrites the decoded value.
func Override[T any](fn func(T) T) Modifier {
	return Modifier{
		typ:      reflect.TypeFor[T](),
		override: func(v any) any { return fn(v.(T)) },
	}
}

// Validate builds a modifier whose predicate must hold for the final value.
// A false return fails the decode with a validation_failed error carrying
// the value the predicate saw.
func Validate[T any](fn func(T) bool) Modifier {
	return Modifier{
		typ:      reflect.TypeFor[T](),
		validate: func(v any) bool { return fn(v.(T)) },
	}
}
