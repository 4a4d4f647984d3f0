package gomold

// DecodeMode controls how strictly a field's raw value must match the
// declared wire kind during decoding.
type DecodeMode int

const (
	ModeStrict   DecodeMode = iota // Raw value must already carry the wire kind.
	ModeLossless                   // Fall back to converting through the raw token's textual form.
	ModeLossy                      // Sequences only: drop elements that fail instead of failing the field.
)
