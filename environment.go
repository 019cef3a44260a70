// FILE: lixenwraith/dirconfig/environment.go
package dirconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/drone/envsubst"
)

// selector is parsed from <EnvPrefix>ENV
type selector struct {
	Name string `env:"ENV"`
}

// environ returns the variable map used for selection and expansion.
func (o Options) environ() map[string]string {
	if o.Environment != nil {
		return o.Environment
	}
	return env.ToMap(os.Environ())
}

// environmentName resolves which overlay directory to merge.
func (o Options) environmentName() (string, error) {
	if o.Env != "" {
		return o.Env, nil
	}

	var sel selector
	if err := env.ParseWithOptions(&sel, env.Options{
		Environment: o.environ(),
		Prefix:      o.EnvPrefix,
	}); err != nil {
		return "", fmt.Errorf("failed to read environment selector %sENV: %w", o.EnvPrefix, err)
	}

	if name := strings.TrimSpace(sel.Name); name != "" {
		return name, nil
	}
	return o.DefaultEnv, nil
}

// expandEnv substitutes $NAME, ${NAME} and ${NAME:-fallback} in raw file
// content. Unset or empty variables without a fallback become empty strings.
func expandEnv(data []byte, vars map[string]string) ([]byte, error) {
	expanded, err := envsubst.Eval(string(data), func(name string) string {
		return vars[name]
	})
	if err != nil {
		return nil, err
	}
	return []byte(expanded), nil
}
