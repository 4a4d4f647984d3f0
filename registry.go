package gomold

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/reoring/gomold/internal/meta"
)

// Schema binds a struct type T to its field declarations. Obtain one from
// dsl.Bind; the zero value is not usable.
type Schema[T any] struct {
	core *schemaCore
}

type schemaCore struct {
	typ     reflect.Type // struct type, never a pointer
	name    string       // display name used in error chains
	fields  []Field      // registered declarations, bound to struct fields
	rest    []meta.FieldInfo
	derived bool // built by reflection alone, without declarations
}

var (
	regMu   sync.RWMutex
	regCore = map[reflect.Type]*schemaCore{}
)

// Register binds the given field declarations to T's struct fields and
// installs the schema in the process-wide registry, replacing any earlier
// schema for T. Nested struct fields of other registered types take part in
// decoding and encoding automatically.
//
// Most callers go through dsl.Bind instead of calling Register directly.
func Register[T any](fields []Field) (*Schema[T], error) {
	rt := reflect.TypeFor[T]()
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("gomold: Register needs a struct type, got %s", rt)
	}
	infos := meta.Fields(rt)
	byKey := make(map[string]meta.FieldInfo, len(infos))
	for _, fi := range infos {
		byKey[fi.Key] = fi
	}
	bound := make([]Field, len(fields))
	used := make(map[string]bool, len(fields))
	for i, f := range fields {
		fi, ok := byKey[f.Name]
		if !ok {
			return nil, fmt.Errorf("gomold: %s has no field with key %q", rt, f.Name)
		}
		if used[f.Name] {
			return nil, fmt.Errorf("gomold: duplicate declaration for key %q on %s", f.Name, rt)
		}
		nf := f
		nf.goName = fi.Name
		nf.index = fi.Index
		if nf.Key == "" {
			nf.Key = f.Name
		}
		ft := fi.Type
		if ft.Kind() == reflect.Pointer {
			nf.ptr = true
			nf.Optional = true
		}
		if nf.Adapter.Decode == nil || nf.Adapter.Encode == nil || nf.Adapter.Target == nil {
			return nil, fmt.Errorf("gomold: declaration %q on %s has no adapter", f.Name, rt)
		}
		// Lossy only means something for sequence targets.
		if nf.Mode == ModeLossy && nf.Adapter.Target.Kind() != reflect.Slice {
			nf.Mode = ModeStrict
		}
		if !compatible(nf.Adapter.Target, fi.Type) {
			return nil, fmt.Errorf("gomold: field %s of %s is %s, adapter produces %s",
				fi.Name, rt, fi.Type, nf.Adapter.Target)
		}
		if nf.Default != nil {
			dt := reflect.TypeOf(nf.Default)
			if !compatible(dt, fi.Type) {
				return nil, fmt.Errorf("gomold: default for %s of %s has type %s, field is %s",
					fi.Name, rt, dt, fi.Type)
			}
		}
		for _, m := range nf.Modifiers {
			if m.typ != nf.Adapter.Target {
				return nil, fmt.Errorf("gomold: modifier on %s of %s expects %s, field produces %s",
					fi.Name, rt, m.typ, nf.Adapter.Target)
			}
		}
		bound[i] = nf
		used[f.Name] = true
	}
	rest := make([]meta.FieldInfo, 0, len(infos)-len(bound))
	for _, fi := range infos {
		if !used[fi.Key] {
			rest = append(rest, fi)
		}
	}
	c := &schemaCore{typ: rt, name: rt.Name(), fields: bound, rest: rest}
	regMu.Lock()
	regCore[rt] = c
	regMu.Unlock()
	return &Schema[T]{core: c}, nil
}

// coreFor returns the schema for t, deriving one by reflection on first use
// when no declaration was ever registered. The read path is lock-free apart
// from the RLock; the insert re-checks under the write lock so concurrent
// first uses derive exactly once.
func coreFor(t reflect.Type) (*schemaCore, error) {
	regMu.RLock()
	if c, ok := regCore[t]; ok {
		regMu.RUnlock()
		return c, nil
	}
	regMu.RUnlock()

	regMu.Lock()
	defer regMu.Unlock()
	if c, ok := regCore[t]; ok {
		return c, nil
	}
	c, err := deriveCore(t)
	if err != nil {
		return nil, err
	}
	regCore[t] = c
	return c, nil
}

// lookupExplicit reports whether t has a registered, non-derived schema.
func lookupExplicit(t reflect.Type) (*schemaCore, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	c, ok := regCore[t]
	if !ok || c.derived {
		return nil, false
	}
	return c, true
}

// deriveCore builds a declaration-free schema: every usable struct field is
// decoded at its resolved key in strict mode, required unless its type is
// nilable.
func deriveCore(t reflect.Type) (*schemaCore, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("gomold: cannot decode into %s", t)
	}
	return &schemaCore{typ: t, name: t.Name(), rest: meta.Fields(t), derived: true}, nil
}

// compatible reports whether a value of type src may be stored in a struct
// field of type dst, unwrapping one pointer level on the field side.
// Conversions are allowed only between types of the same kind, which admits
// named types while rejecting surprises like int-to-string.
func compatible(src, dst reflect.Type) bool {
	if sameShape(src, dst) {
		return true
	}
	return dst.Kind() == reflect.Pointer && sameShape(src, dst.Elem())
}

func sameShape(src, dst reflect.Type) bool {
	if src.AssignableTo(dst) {
		return true
	}
	return src.ConvertibleTo(dst) && src.Kind() == dst.Kind()
}
