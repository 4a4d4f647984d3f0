// Package meta analyzes struct types into flattened, ordered field lists.
// Analysis runs once per type; results are cached and safe for concurrent
// use from multiple goroutines.
package meta

import (
	"reflect"
	"strings"
	"sync"
)

// FieldInfo describes one usable struct field after flattening.
type FieldInfo struct {
	Name  string // Go field name
	Key   string // resolved wire key
	Index []int  // index path from the root struct, through embedded levels
	Type  reflect.Type
}

var cache sync.Map // reflect.Type -> []FieldInfo

// Fields returns the flattened field list for a struct type (or pointer to
// one). Embedded structs contribute their exported fields at the embedding
// level; on a name or key collision the shallowest declaration wins. Fields
// tagged "-" and unexported fields are dropped.
func Fields(t reflect.Type) []FieldInfo {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	if cached, ok := cache.Load(t); ok {
		return cached.([]FieldInfo)
	}
	var out []FieldInfo
	depth := map[string]int{}
	walk(t, nil, 0, &out, depth, map[string]int{})
	out = dedupKeys(out, depth)
	actual, _ := cache.LoadOrStore(t, out)
	return actual.([]FieldInfo)
}

func walk(t reflect.Type, index []int, level int, out *[]FieldInfo, depth, pos map[string]int) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := make([]int, 0, len(index)+1)
		idx = append(append(idx, index...), i)
		if sf.Anonymous {
			ft := sf.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				walk(ft, idx, level+1, out, depth, pos)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		key := ResolveKey(sf)
		if key == "-" {
			continue
		}
		fi := FieldInfo{Name: sf.Name, Key: key, Index: idx, Type: sf.Type}
		if p, ok := pos[sf.Name]; ok {
			if level < depth[sf.Name] {
				(*out)[p] = fi
				depth[sf.Name] = level
			}
			continue
		}
		pos[sf.Name] = len(*out)
		depth[sf.Name] = level
		*out = append(*out, fi)
	}
}

// dedupKeys keeps the shallowest declaration per resolved key. Distinct field
// names can collide on a key through tags.
func dedupKeys(fields []FieldInfo, depth map[string]int) []FieldInfo {
	kept := make([]FieldInfo, 0, len(fields))
	pos := map[string]int{}
	for _, fi := range fields {
		if p, ok := pos[fi.Key]; ok {
			if depth[fi.Name] < depth[kept[p].Name] {
				kept[p] = fi
			}
			continue
		}
		pos[fi.Key] = len(kept)
		kept = append(kept, fi)
	}
	return kept
}

// ResolveKey resolves a struct field's external wire key.
// Priority: gomold:"name=..." > json tag name > field name; "-" disables the
// field.
func ResolveKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("gomold"); gt != "" {
		for _, p := range strings.Split(gt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if jt[:i] == "" {
				return sf.Name
			}
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}
