// Package mod carries ready-made modifiers for common field cleanups and
// checks. Attach them with the Modify step of the dsl builder.
package mod

import (
	"cmp"
	"slices"
	"strings"

	gomold "github.com/reoring/gomold"
)

// Trimmed strips leading and trailing whitespace from a string field.
func Trimmed() gomold.Modifier {
	return gomold.Override(strings.TrimSpace)
}

// Max caps the value at hi.
func Max[T cmp.Ordered](hi T) gomold.Modifier {
	return gomold.Override(func(v T) T { return min(v, hi) })
}

// Min raises the value to at least lo.
func Min[T cmp.Ordered](lo T) gomold.Modifier {
	return gomold.Override(func(v T) T { return max(v, lo) })
}

// Clamp keeps the value within [lo, hi].
func Clamp[T cmp.Ordered](lo, hi T) gomold.Modifier {
	return gomold.Override(func(v T) T { return min(max(v, lo), hi) })
}

// Range rejects values outside [lo, hi].
func Range[T cmp.Ordered](lo, hi T) gomold.Modifier {
	return gomold.Validate(func(v T) bool { return lo <= v && v <= hi })
}

// NonEmpty rejects strings that are empty after the overrides ran.
func NonEmpty() gomold.Modifier {
	return gomold.Validate(func(v string) bool { return v != "" })
}

// SortAscending sorts a slice field in ascending order.
func SortAscending[E cmp.Ordered]() gomold.Modifier {
	return gomold.Override(func(v []E) []E {
		slices.Sort(v)
		return v
	})
}

// SortDescending sorts a slice field in descending order.
func SortDescending[E cmp.Ordered]() gomold.Modifier {
	return gomold.Override(func(v []E) []E {
		slices.SortFunc(v, func(a, b E) int { return cmp.Compare(b, a) })
		return v
	})
}
