package gomold

import "strings"

// splitKey splits a dotted key into path segments. Empty segments are
// preserved, so "a..b" addresses the key "" inside the object at "a", and a
// dot-free key is a single segment.
func splitKey(key string) []string {
	return strings.Split(key, ".")
}

// resolveDecode walks tree along the dotted key and returns the value at the
// final segment. The bool is false as soon as any hop is absent or not an
// object; an explicit null at the final segment still reports found.
func resolveDecode(tree map[string]any, key string) (any, bool) {
	segs := splitKey(key)
	cur := tree
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur[seg]
		if !ok {
			return nil, false
		}
		m, ok := next.(map[string]any)
		if !ok {
			return nil, false
		}
		cur = m
	}
	v, ok := cur[segs[len(segs)-1]]
	return v, ok
}

// resolveEncode returns the object that holds the final segment of key,
// creating intermediate objects on demand and reusing ones already present.
// A non-object value sitting at an intermediate hop is replaced.
func resolveEncode(tree map[string]any, key string) (map[string]any, string) {
	segs := splitKey(key)
	cur := tree
	for _, seg := range segs[:len(segs)-1] {
		if next, ok := cur[seg].(map[string]any); ok {
			cur = next
			continue
		}
		next := map[string]any{}
		cur[seg] = next
		cur = next
	}
	return cur, segs[len(segs)-1]
}
