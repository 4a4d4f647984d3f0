package dsl

import (
	gomold "github.com/reoring/gomold"
)

// Builder collects field declarations for one struct type. Declarations
// stay loose until Bind matches them against the struct's fields.
type Builder struct {
	fields []gomold.Field
}

type fieldStep struct {
	b *Builder
	i int
}

// Struct creates a new schema builder.
func Struct() *Builder {
	return &Builder{}
}

// Field declares the struct field carrying the given resolved key and the
// type that molds its wire value. The key doubles as the lookup path
// unless Key overrides it.
func (b *Builder) Field(name string, t FieldType) *fieldStep {
	b.fields = append(b.fields, gomold.Field{Name: name, Adapter: t.adapter()})
	return &fieldStep{b: b, i: len(b.fields) - 1}
}

// DebugAll turns on the raw-value dump for every field declared so far.
func (b *Builder) DebugAll() *Builder {
	for i := range b.fields {
		b.fields[i].Debug = true
	}
	return b
}

func (f *fieldStep) cur() *gomold.Field { return &f.b.fields[f.i] }

// Key overrides the lookup path for the current field. Dots descend into
// nested objects.
func (f *fieldStep) Key(path string) *fieldStep {
	f.cur().Key = path
	return f
}

// Strict requires the wire value to already have the field's JSON kind.
// This is the default.
func (f *fieldStep) Strict() *fieldStep {
	f.cur().Mode = gomold.ModeStrict
	return f
}

// Lossless additionally accepts representations that convert without
// losing information, such as "400" for an int field.
func (f *fieldStep) Lossless() *fieldStep {
	f.cur().Mode = gomold.ModeLossless
	return f
}

// Lossy decodes sequence elements strictly and drops the ones that fail.
// On non-sequence fields it behaves like Strict.
func (f *fieldStep) Lossy() *fieldStep {
	f.cur().Mode = gomold.ModeLossy
	return f
}

// Optional makes any failure to produce a value leave the field untouched.
// Pointer fields are optional without this.
func (f *fieldStep) Optional() *fieldStep {
	f.cur().Optional = true
	return f
}

// Default seeds the field with v before decoding; a required field that
// fails to produce a value then keeps v instead of failing.
func (f *fieldStep) Default(v any) *fieldStep {
	f.cur().Default = v
	return f
}

// EncodeNull writes an explicit null when an optional field has no value,
// instead of omitting the key.
func (f *fieldStep) EncodeNull() *fieldStep {
	f.cur().EncodeNull = true
	return f
}

// Modify appends override and validate modifiers. All overrides run first,
// in declaration order; validations then see the final value.
func (f *fieldStep) Modify(ms ...gomold.Modifier) *fieldStep {
	cur := f.cur()
	cur.Modifiers = append(cur.Modifiers, ms...)
	return f
}

// Debug dumps the raw wire value found for this field on every decode.
func (f *fieldStep) Debug() *fieldStep {
	f.cur().Debug = true
	return f
}

func (f *fieldStep) Field(name string, t FieldType) *fieldStep { return f.b.Field(name, t) }
func (f *fieldStep) DebugAll() *Builder                        { return f.b.DebugAll() }
