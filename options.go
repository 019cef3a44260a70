// FILE: lixenwraith/dirconfig/options.go
package dirconfig

import (
	"fmt"

	"dario.cat/mergo"
	"go.uber.org/zap"
)

const (
	// DefaultEnvPrefix prefixes the selector variable name, giving APP_ENV
	DefaultEnvPrefix = "APP_"
	// DefaultEnvName is the environment selected when the selector variable is unset or empty
	DefaultEnvName = "development"
	// DefaultTagName is the struct tag used by Scan
	DefaultTagName = "toml"
)

// Options configures how a Config loads and reads its store
type Options struct {
	// EnvPrefix is prepended to "ENV" to name the selector variable.
	// "NODE_" reads NODE_ENV, "" reads ENV. NewWithOptions does not
	// default it; start from DefaultOptions to keep APP_.
	EnvPrefix string

	// DefaultEnv is used when the selector variable is unset or empty
	DefaultEnv string

	// Env pins the environment, ignoring the selector variable
	Env string

	// Environment replaces the process environment for selector lookup
	// and ${NAME} expansion (nil = process environment)
	Environment map[string]string

	// TagName is the struct tag Scan decodes with
	TagName string

	// DisableExpansion turns off ${NAME} substitution in built-in loaders
	DisableExpansion bool

	// FalsyAsMissing makes Get return the default for nil, false, zero
	// numbers and empty strings, not only for missing paths
	FalsyAsMissing bool

	// Logger receives load diagnostics (nil = no-op)
	Logger *zap.Logger
}

// DefaultOptions returns the standard options
func DefaultOptions() Options {
	return Options{
		EnvPrefix:  DefaultEnvPrefix,
		DefaultEnv: DefaultEnvName,
		TagName:    DefaultTagName,
	}
}

// withDefaults fills unset fields of opts from DefaultOptions. EnvPrefix is
// taken as given: an empty prefix selects the plain ENV variable.
func withDefaults(opts Options) Options {
	defaults := DefaultOptions()
	defaults.EnvPrefix = ""
	if err := mergo.Merge(&opts, defaults); err != nil {
		panic(fmt.Sprintf("config options merge failed: %v", err))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}
