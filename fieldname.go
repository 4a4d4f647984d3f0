package gomold

import (
	"reflect"

	"github.com/reoring/gomold/internal/meta"
)

// FieldNameOf returns the resolved wire key for a top-level field of S
// selected by address, e.g.:
//
//	FieldNameOf[Product](func(p *Product) *string { return &p.SKU }) // "sku"
//
// The selector guarantees a compile-time error if the field is renamed or
// removed.
func FieldNameOf[S any, F any](selector func(*S) *F) string {
	if selector == nil {
		panic("gomold.FieldNameOf: selector must not be nil")
	}
	var zero S
	fp := reflect.ValueOf(selector(&zero)).Pointer()
	rv := reflect.ValueOf(&zero).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if fv.CanAddr() && fv.Addr().Pointer() == fp {
			name := meta.ResolveKey(sf)
			if name == "" || name == "-" {
				panic("gomold.FieldNameOf: selected field is disabled")
			}
			return name
		}
	}
	panic("gomold.FieldNameOf: selector must return the address of a top-level field")
}
