// FILE: lixenwraith/dirconfig/builder.go
package dirconfig

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Builder provides a fluent interface for building and loading a Config
type Builder struct {
	opts      Options
	dir       string
	discovery *DirDiscoveryOptions
	loaders   map[string]Loader
	err       error
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		opts:    DefaultOptions(),
		loaders: make(map[string]Loader),
	}
}

// WithDir sets the configuration directory
func (b *Builder) WithDir(dir string) *Builder {
	b.dir = dir
	return b
}

// WithDirDiscovery searches for the directory when none was set with WithDir
func (b *Builder) WithDirDiscovery(opts DirDiscoveryOptions) *Builder {
	b.discovery = &opts
	return b
}

// WithEnv pins the overlay environment
func (b *Builder) WithEnv(name string) *Builder {
	b.opts.Env = name
	return b
}

// WithEnvPrefix sets the prefix of the selector variable (<prefix>ENV)
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.opts.EnvPrefix = prefix
	return b
}

// WithDefaultEnv sets the environment used when the selector variable is unset
func (b *Builder) WithDefaultEnv(name string) *Builder {
	b.opts.DefaultEnv = name
	return b
}

// WithEnvironment replaces the process environment for selection and expansion
func (b *Builder) WithEnvironment(vars map[string]string) *Builder {
	b.opts.Environment = vars
	return b
}

// WithLoader registers a loader for a file suffix
func (b *Builder) WithLoader(suffix string, loader Loader) *Builder {
	if loader == nil {
		b.err = errors.Join(b.err, fmt.Errorf("loader for suffix %q cannot be nil", suffix))
		return b
	}
	b.loaders[suffix] = loader
	return b
}

// WithLogger sets the logger for load diagnostics
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithTagName sets the struct tag used by Scan
func (b *Builder) WithTagName(tagName string) *Builder {
	switch tagName {
	case "toml", "yaml", "json", "mapstructure", "config":
		b.opts.TagName = tagName
	default:
		b.err = errors.Join(b.err, fmt.Errorf("unsupported tag name %q", tagName))
	}
	return b
}

// WithFalsyAsMissing makes Get fall back to the default for falsy values
func (b *Builder) WithFalsyAsMissing() *Builder {
	b.opts.FalsyAsMissing = true
	return b
}

// WithoutExpansion disables ${NAME} substitution in built-in loaders
func (b *Builder) WithoutExpansion() *Builder {
	b.opts.DisableExpansion = true
	return b
}

// Build creates the Config and loads the directory
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	cfg := NewWithOptions(b.opts)
	for suffix, loader := range b.loaders {
		if err := cfg.RegisterLoader(suffix, loader); err != nil {
			return nil, err
		}
	}

	dir := b.dir
	if dir == "" && b.discovery != nil {
		found, ok := discoverDir(*b.discovery, cfg.options.environ())
		if !ok {
			return nil, fmt.Errorf("%w: no directory found for %q", ErrDirNotFound, b.discovery.Name)
		}
		dir = found
	}
	if dir == "" {
		return nil, fmt.Errorf("configuration directory not set")
	}

	if err := cfg.Load(dir); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}

// BuildAndScan builds the configuration and decodes the section at key into target
func (b *Builder) BuildAndScan(key string, target any) (*Config, error) {
	cfg, err := b.Build()
	if err != nil {
		return nil, err
	}

	if err := cfg.Scan(key, target); err != nil {
		return nil, fmt.Errorf("failed to scan final config into target: %w", err)
	}
	return cfg, nil
}
