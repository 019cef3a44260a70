// FILE: lixenwraith/dirconfig/dotted.go
package dirconfig

import "strings"

// Lookup reads the value at a dot-notation path inside root.
// Only keys the maps actually hold are considered, and only map[string]any
// values are descended into, so "port.toString" over a numeric port is not found.
func Lookup(root map[string]any, path string) (any, bool) {
	node, leaf, ok := traverse(root, path, false)
	if !ok {
		return nil, false
	}
	value, exists := node[leaf]
	return value, exists
}

// Assign writes value at a dot-notation path inside root and returns value.
// Missing intermediate maps are created. An intermediate segment holding a
// non-map value is overwritten by a new map. root must be non-nil.
func Assign(root map[string]any, path string, value any) any {
	node, leaf, _ := traverse(root, path, true)
	node[leaf] = value
	return value
}

// traverse walks every segment but the last and returns the parent node and
// the leaf segment. With create unset it stops at the first missing or
// non-map segment.
func traverse(root map[string]any, path string, create bool) (map[string]any, string, bool) {
	segments := strings.Split(path, ".")
	current := root

	for _, segment := range segments[:len(segments)-1] {
		next, exists := current[segment]
		nextMap, isMap := next.(map[string]any)

		if !exists || !isMap {
			if !create {
				return nil, "", false
			}
			nextMap = make(map[string]any)
			current[segment] = nextMap
		}
		current = nextMap
	}

	return current, segments[len(segments)-1], true
}
