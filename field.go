package gomold

import (
	"context"
	"reflect"
)

// Adapter moves one field's value between its raw tree form and its Go form.
// The dsl package constructs adapters; the engine only invokes them.
type Adapter struct {
	// Target is the Go type Decode produces and Encode consumes.
	Target reflect.Type
	// Decode turns a raw tree value into a Target value, honoring mode.
	Decode func(ctx context.Context, raw any, mode DecodeMode) (any, error)
	// Encode turns a Target value back into a raw tree value.
	Encode func(ctx context.Context, v any) (any, error)
}

// Field declares how one struct field binds to the wire. Name identifies the
// struct field by its resolved key; Key, when set, overrides the dotted path
// used to look the value up in the tree. Fields are assembled by the dsl
// package and become immutable once a schema is registered.
type Field struct {
	Name       string // wire name; matches the struct field whose resolved key equals it
	Key        string // dotted lookup path; empty means Name
	Mode       DecodeMode
	Optional   bool // absent or failing values are skipped instead of failing
	Default    any  // value kept when a required field cannot be resolved; nil when unset
	EncodeNull bool // write an explicit null for an absent optional value
	Debug      bool
	Modifiers  []Modifier
	Adapter    Adapter

	// filled in at registration
	goName string
	index  []int
	ptr    bool
}
