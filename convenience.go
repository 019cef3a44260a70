// FILE: lixenwraith/dirconfig/convenience.go
package dirconfig

import (
	"fmt"
	"io"
	"strings"
)

// Quick creates a Config with default options and loads dir
func Quick(dir string) (*Config, error) {
	cfg := New()
	if err := cfg.Load(dir); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustQuick is like Quick but panics on error
func MustQuick(dir string) *Config {
	cfg, err := Quick(dir)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return cfg
}

// Dump writes a snapshot of the store in the given format (toml, yaml or json)
func (c *Config) Dump(w io.Writer, format string) error {
	format = strings.ToLower(format)
	if format == "yml" {
		format = FormatYAML
	}

	if err := encodeFormat(w, format, c.Snapshot()); err != nil {
		return fmt.Errorf("failed to dump config as %s: %w", format, err)
	}
	return nil
}

// Clone creates an independent deep copy of the configuration
func (c *Config) Clone() *Config {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	clone := &Config{
		data:    deepCopy(c.data).(map[string]any),
		loaders: make(map[string]Loader, len(c.loaders)),
		options: c.options,
	}
	for suffix, loader := range c.loaders {
		clone.loaders[suffix] = loader
	}
	return clone
}
