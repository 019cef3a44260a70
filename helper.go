// FILE: lixenwraith/dirconfig/helper.go
package dirconfig

import "sort"

// flattenMap collects every leaf of nested under its dot-notation path.
// Empty maps are leaves so sections without keys stay visible.
func flattenMap(nested map[string]any, prefix string, flat map[string]any) {
	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if child, isMap := value.(map[string]any); isMap && len(child) > 0 {
			flattenMap(child, path, flat)
			continue
		}
		flat[path] = deepCopy(value)
	}
}

// Flatten returns a copy of the store keyed by dotted leaf path.
func (c *Config) Flatten() map[string]any {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	flat := make(map[string]any)
	flattenMap(c.data, "", flat)
	return flat
}

// Keys returns every dotted leaf path in sorted order.
func (c *Config) Keys() []string {
	flat := c.Flatten()
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
