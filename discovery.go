// FILE: lixenwraith/dirconfig/discovery.go
package dirconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DirDiscoveryOptions configures automatic config directory discovery
type DirDiscoveryOptions struct {
	// Name of the application, used for XDG and /etc lookups
	Name string

	// Environment variable holding an explicit directory
	EnvVar string

	// Custom search paths, checked before the defaults
	Paths []string

	// Whether to look for ./config in the current directory
	UseCurrentDir bool

	// Whether to search XDG config directories
	UseXDG bool
}

// DefaultDiscoveryOptions returns sensible defaults
func DefaultDiscoveryOptions(appName string) DirDiscoveryOptions {
	return DirDiscoveryOptions{
		Name:          appName,
		EnvVar:        strings.ToUpper(strings.ReplaceAll(appName, "-", "_")) + "_CONFIG_DIR",
		UseCurrentDir: true,
		UseXDG:        true,
	}
}

// DiscoverDir returns the first existing configuration directory using the
// process environment.
func DiscoverDir(opts DirDiscoveryOptions) (string, bool) {
	return discoverDir(opts, env.ToMap(os.Environ()))
}

// discoverDir checks, in order: the env var, custom paths, ./config, XDG paths.
func discoverDir(opts DirDiscoveryOptions, vars map[string]string) (string, bool) {
	if opts.EnvVar != "" {
		if dir := vars[opts.EnvVar]; dir != "" && isDir(dir) {
			return dir, true
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, filepath.Join(cwd, "config"))
		}
	}

	if opts.UseXDG && opts.Name != "" {
		searchPaths = append(searchPaths, getXDGConfigPaths(opts.Name, vars)...)
	}

	for _, dir := range searchPaths {
		if isDir(dir) {
			return dir, true
		}
	}

	// Not finding a directory is not an error; callers decide
	return "", false
}

// getXDGConfigPaths returns XDG-compliant config search paths
func getXDGConfigPaths(appName string, vars map[string]string) []string {
	var paths []string

	if xdgHome := vars["XDG_CONFIG_HOME"]; xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := vars["HOME"]; home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := vars["XDG_CONFIG_DIRS"]; xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
