// FILE: lixenwraith/dirconfig/merge.go
package dirconfig

import (
	"fmt"
	"math"
	"reflect"

	"dario.cat/mergo"
)

// mergeSection applies an overlay value to one top-level section.
// It reports false when either side is not a map and the overlay replaced
// the section outright. Maps merge recursively with overlay values winning.
func mergeSection(store map[string]any, key string, overlay any) (bool, error) {
	if _, exists := store[key]; !exists {
		store[key] = make(map[string]any)
	}

	base, baseIsMap := store[key].(map[string]any)
	src, srcIsMap := overlay.(map[string]any)
	if !baseIsMap || !srcIsMap {
		store[key] = deepCopy(overlay)
		return false, nil
	}

	// Merge a copy so the store never shares maps or slices with loader output
	if err := mergo.Merge(&base, deepCopy(src).(map[string]any), mergo.WithOverride); err != nil {
		return false, fmt.Errorf("failed to merge overlay into section '%s': %w", key, err)
	}
	store[key] = base
	return true, nil
}

// deepCopy returns a copy of value sharing no maps or slices with it.
func deepCopy(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = deepCopy(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = deepCopy(item)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(v))
		for i, item := range v {
			out[i] = deepCopy(item).(map[string]any)
		}
		return out
	}

	// Typed slices and maps set by callers
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return value
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if item := deepCopy(rv.Index(i).Interface()); item != nil {
				out.Index(i).Set(reflect.ValueOf(item))
			}
		}
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return value
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			item := iter.Value()
			if copied := deepCopy(item.Interface()); copied != nil {
				item = reflect.ValueOf(copied)
			}
			out.SetMapIndex(iter.Key(), item)
		}
		return out.Interface()
	default:
		return value
	}
}

// isFalsy reports whether value is nil, false, a numeric zero or an empty string.
func isFalsy(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0 || math.IsNaN(rv.Float())
	}
	return false
}
