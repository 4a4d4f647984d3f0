// Package coerce converts raw wire scalars into Go scalars. Raw values come
// from a tree driver and may be string, bool, json.Number or any native Go
// numeric, depending on the driver that produced the tree.
//
// Every function takes a lossless flag. When false the raw value must already
// carry the wire kind of the target (number for numeric targets, string for
// string, bool for bool). When true the raw token's textual form is re-parsed
// as the target kind, so "400" becomes the int 400 and the number 629.9
// becomes the string "629.9". Conversions that would lose information, such
// as a fractional number into an integer target, fail in both modes.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
)

// String coerces raw into a string.
func String(raw any, lossless bool) (string, bool) {
	if s, ok := raw.(string); ok {
		return s, true
	}
	if !lossless {
		return "", false
	}
	return Token(raw)
}

// Bool coerces raw into a bool. In lossless mode the tokens "true", "false",
// "1" and "0" are accepted, the numeric pair covering bool-from-number.
func Bool(raw any, lossless bool) (bool, bool) {
	if b, ok := raw.(bool); ok {
		return b, true
	}
	if !lossless {
		return false, false
	}
	tok, ok := Token(raw)
	if !ok {
		return false, false
	}
	switch tok {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

// Int coerces raw into a signed integer of the given bit size (0 means the
// platform int, as in strconv).
func Int(raw any, bits int, lossless bool) (int64, bool) {
	if !lossless && !IsNumber(raw) {
		return 0, false
	}
	tok, ok := Token(raw)
	if !ok {
		return 0, false
	}
	if i, err := strconv.ParseInt(tok, 10, bits); err == nil {
		return i, true
	}
	// Number tokens like "400.0" or "1e3" still denote integers.
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}
	i, err := strconv.ParseInt(strconv.FormatFloat(f, 'f', -1, 64), 10, bits)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Uint coerces raw into an unsigned integer of the given bit size.
func Uint(raw any, bits int, lossless bool) (uint64, bool) {
	if !lossless && !IsNumber(raw) {
		return 0, false
	}
	tok, ok := Token(raw)
	if !ok {
		return 0, false
	}
	if u, err := strconv.ParseUint(tok, 10, bits); err == nil {
		return u, true
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(f, 0) || math.Trunc(f) != f || f < 0 {
		return 0, false
	}
	u, err := strconv.ParseUint(strconv.FormatFloat(f, 'f', -1, 64), 10, bits)
	if err != nil {
		return 0, false
	}
	return u, true
}

// Float coerces raw into a float of the given bit size (32 or 64).
func Float(raw any, bits int, lossless bool) (float64, bool) {
	if !lossless && !IsNumber(raw) {
		return 0, false
	}
	tok, ok := Token(raw)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, bits)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Token returns the textual form of a raw scalar, mirroring the JSON token
// that produced it. json.Number keeps its original literal.
func Token(raw any) (string, bool) {
	switch t := raw.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32), true
	case int:
		return strconv.FormatInt(int64(t), 10), true
	case int8:
		return strconv.FormatInt(int64(t), 10), true
	case int16:
		return strconv.FormatInt(int64(t), 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint:
		return strconv.FormatUint(uint64(t), 10), true
	case uint8:
		return strconv.FormatUint(uint64(t), 10), true
	case uint16:
		return strconv.FormatUint(uint64(t), 10), true
	case uint32:
		return strconv.FormatUint(uint64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	}
	return "", false
}

// IsNumber reports whether raw carries the number wire kind.
func IsNumber(raw any) bool {
	switch raw.(type) {
	case json.Number, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}
