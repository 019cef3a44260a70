// FILE: lixenwraith/dirconfig/config.go
package dirconfig

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Config holds one nested configuration store loaded from a directory.
// Top-level keys are sections, one per configuration file.
type Config struct {
	data    map[string]any
	loaders map[string]Loader // Custom loaders by file suffix
	options Options
	mutex   sync.RWMutex
}

// New creates an empty Config with default options.
func New() *Config {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates an empty Config. Unset fields of opts other than
// EnvPrefix take their DefaultOptions value.
func NewWithOptions(opts Options) *Config {
	return &Config{
		data:    make(map[string]any),
		loaders: make(map[string]Loader),
		options: withDefaults(opts),
	}
}

// RegisterLoader makes files ending in suffix loadable through loader.
// A registered loader takes precedence over the built-in one for the same suffix.
func (c *Config) RegisterLoader(suffix string, loader Loader) error {
	if suffix == "" || suffix == "." {
		return fmt.Errorf("loader suffix cannot be empty")
	}
	if loader == nil {
		return fmt.Errorf("loader for suffix %q cannot be nil", suffix)
	}
	if !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.loaders[suffix] = loader
	return nil
}

// Get returns the value at a dotted key, or the first of def (nil if none)
// when the key holds no value. A stored nil counts as no value; with
// FalsyAsMissing so do false, numeric zero and the empty string.
// An empty key returns ErrInvalidKey.
func (c *Config) Get(key string, def ...any) (any, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: get requires a key", ErrInvalidKey)
	}

	var fallback any
	if len(def) > 0 {
		fallback = def[0]
	}

	value, found := c.Lookup(key)
	if !found || value == nil {
		return fallback, nil
	}
	if c.options.FalsyAsMissing && isFalsy(value) {
		return fallback, nil
	}
	return value, nil
}

// Lookup returns the value at a dotted key and whether the key exists.
// The value is shared with the store and must not be modified.
func (c *Config) Lookup(key string) (any, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return Lookup(c.data, key)
}

// Set stores value at a dotted key, creating intermediate sections as
// needed, and returns value. Setting nil leaves the key present but empty.
func (c *Config) Set(key string, value any) (any, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: set requires a key", ErrInvalidKey)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	return Assign(c.data, key, value), nil
}

// Snapshot returns a deep copy of the whole store.
func (c *Config) Snapshot() map[string]any {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return deepCopy(c.data).(map[string]any)
}

// Call dispatches on argument count: none returns Snapshot, one is Get
// and two or more is Set (extra arguments are ignored).
func (c *Config) Call(args ...any) (any, error) {
	if len(args) == 0 {
		return c.Snapshot(), nil
	}

	key, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: key must be a string, got %T", ErrInvalidKey, args[0])
	}

	if len(args) == 1 {
		return c.Get(key)
	}
	return c.Set(key, args[1])
}

// Sections returns the sorted top-level keys of the store.
func (c *Config) Sections() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	sections := make([]string, 0, len(c.data))
	for key := range c.data {
		sections = append(sections, key)
	}
	sort.Strings(sections)
	return sections
}

// Environment returns the overlay environment the next Load would merge.
func (c *Config) Environment() (string, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.options.environmentName()
}
