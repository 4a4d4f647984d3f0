package gomold

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/reoring/gomold/i18n"
)

// Error codes carried by chain links.
const (
	CodeMissingValue     = "missing_value"
	CodeInvalidValue     = "invalid_value"
	CodeInvalidDate      = "invalid_date"
	CodeValidationFailed = "validation_failed"
	CodeWrapped          = "wrapped"
	CodeDecodeProperty   = "decode_property"
	CodeDecodeType       = "decode_type"
)

// Error is a single link in a decode failure chain. Leaf links carry one of
// the value-level codes; the engine wraps them outward with decode_property
// and decode_type links so the full path from the root type down to the
// offending value survives in the error itself.
//
// Links are immutable once created. A chain is always finite: its length is
// bounded by the depth of the schema that produced it.
type Error struct {
	Code     string
	Message  string // Localized message for this link (see i18n).
	Type     string // Target type name (decode_type, decode_property, validation_failed).
	Property string // Field name (decode_property, validation_failed).
	Key      string // Wire key path (decode_property).
	Value    any    // Offending value after overrides (validation_failed).
	Source   string // Raw source text (invalid_date).
	Cause    error  // Inner link, or the wrapped external error.
}

// Error renders the whole chain, outermost link first, each inner link
// indented one level deeper.
func (e *Error) Error() string {
	var b strings.Builder
	e.render(&b, 0)
	return b.String()
}

func (e *Error) render(b *strings.Builder, depth int) {
	if depth > 0 {
		b.WriteByte('\n')
	}
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString(e.describe())
	if e.Cause == nil {
		return
	}
	if ce, ok := e.Cause.(*Error); ok {
		ce.render(b, depth+1)
		return
	}
	b.WriteByte('\n')
	for i := 0; i <= depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString(e.Cause.Error())
}

func (e *Error) describe() string {
	msg := e.Message
	if msg == "" {
		msg = i18n.T(e.Code, nil)
	}
	switch e.Code {
	case CodeDecodeType:
		return fmt.Sprintf("%s %q", msg, e.Type)
	case CodeDecodeProperty:
		return fmt.Sprintf("%s %q (key %q) of %q", msg, e.Property, e.Key, e.Type)
	case CodeInvalidDate:
		return fmt.Sprintf("%s %q", msg, e.Source)
	case CodeValidationFailed:
		return fmt.Sprintf("%s %q of %q, value: %v", msg, e.Property, e.Type, e.Value)
	default:
		return msg
	}
}

// Unwrap exposes the inner link for errors.Is / errors.As traversal.
func (e *Error) Unwrap() error { return e.Cause }

// ErrMissingValue reports that no value was present at a required key.
func ErrMissingValue() *Error {
	return &Error{Code: CodeMissingValue, Message: i18n.T(CodeMissingValue, nil)}
}

// ErrInvalidValue reports a raw value that cannot become the target type.
func ErrInvalidValue() *Error {
	return &Error{Code: CodeInvalidValue, Message: i18n.T(CodeInvalidValue, nil)}
}

// ErrInvalidDate reports a date string no strategy could parse.
func ErrInvalidDate(source string) *Error {
	return &Error{
		Code:    CodeInvalidDate,
		Message: i18n.T(CodeInvalidDate, map[string]string{"source": source}),
		Source:  source,
	}
}

// ErrValidationFailed reports a value rejected by a validation modifier.
// The value is the one the predicate saw, after all overrides ran.
func ErrValidationFailed(typeName, property string, value any) *Error {
	return &Error{
		Code: CodeValidationFailed,
		Message: i18n.T(CodeValidationFailed, map[string]string{
			"type": typeName, "property": property, "value": fmt.Sprint(value),
		}),
		Type:     typeName,
		Property: property,
		Value:    value,
	}
}

// WrapError lifts an arbitrary error into the chain. Errors that already are
// chain links pass through unchanged.
func WrapError(cause error) *Error {
	if cause == nil {
		return nil
	}
	if ee, ok := cause.(*Error); ok {
		return ee
	}
	return &Error{Code: CodeWrapped, Message: i18n.T(CodeWrapped, nil), Cause: cause}
}

func wrapProperty(typeName, property, key string, cause error) *Error {
	return &Error{
		Code:     CodeDecodeProperty,
		Message:  i18n.T(CodeDecodeProperty, map[string]string{"type": typeName, "property": property, "key": key}),
		Type:     typeName,
		Property: property,
		Key:      key,
		Cause:    WrapError(cause),
	}
}

func wrapType(typeName string, cause error) *Error {
	return &Error{
		Code:    CodeDecodeType,
		Message: i18n.T(CodeDecodeType, map[string]string{"type": typeName}),
		Type:    typeName,
		Cause:   WrapError(cause),
	}
}

// AsError extracts a chain link from an error using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// EqualErrors reports whether two errors describe the same failure shape.
// Codes, types, properties, keys, sources and values are compared link by
// link; messages are not, so chains built under different languages still
// compare equal. Wrapped external errors compare by presence alone.
func EqualErrors(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ea, aok := AsError(a)
	eb, bok := AsError(b)
	if !aok || !bok {
		return !aok && !bok
	}
	if ea.Code != eb.Code || ea.Type != eb.Type || ea.Property != eb.Property ||
		ea.Key != eb.Key || ea.Source != eb.Source {
		return false
	}
	if !reflect.DeepEqual(ea.Value, eb.Value) {
		return false
	}
	if ea.Code == CodeWrapped {
		return (ea.Cause != nil) == (eb.Cause != nil)
	}
	return EqualErrors(ea.Cause, eb.Cause)
}
