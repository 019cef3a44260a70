// FILE: lixenwraith/dirconfig/loader.go
package dirconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// sourceFile is one configuration file found in a directory
type sourceFile struct {
	key    string // Section key: file name without suffix
	path   string
	loader Loader
}

// Load populates the store from dir and then merges the overlay directory
// named after the active environment, if present.
//
// Each file in dir replaces its whole section. Overlay files are
// deep-merged into their section; when either side is not a map the
// overlay value replaces the section. Loader errors are returned as-is and
// leave sections applied before the failing file in place.
func (c *Config) Load(dir string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	logger := c.options.Logger.With(zap.String("dir", dir))
	loaders := c.resolveLoaders()

	// 1. Base sections, full replacement
	files, err := listDir(dir, loaders)
	if err != nil {
		return err
	}
	for _, file := range files {
		value, err := file.loader.Load(file.path)
		if err != nil {
			return err
		}
		c.data[file.key] = value
		logger.Debug("loaded config section", zap.String("section", file.key), zap.String("path", file.path))
	}

	// 2. Environment overlay
	envName, err := c.options.environmentName()
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("env", envName))

	envDir := filepath.Join(dir, envName)
	info, err := os.Stat(envDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read overlay directory '%s': %w", envDir, err)
	}
	if err != nil || !info.IsDir() {
		logger.Debug("no environment overlay directory", zap.String("overlay", envDir))
		logger.Info("configuration loaded", zap.Int("sections", len(files)))
		return nil
	}

	overlays, err := listDir(envDir, loaders)
	if err != nil {
		return err
	}
	for _, file := range overlays {
		value, err := file.loader.Load(file.path)
		if err != nil {
			return err
		}
		merged, err := mergeSection(c.data, file.key, value)
		if err != nil {
			return err
		}
		if merged {
			logger.Debug("merged overlay section", zap.String("section", file.key), zap.String("path", file.path))
		} else {
			logger.Debug("replaced section with overlay value", zap.String("section", file.key), zap.String("path", file.path))
		}
	}

	logger.Info("configuration loaded",
		zap.Int("sections", len(files)),
		zap.Int("overlays", len(overlays)))
	return nil
}

// resolveLoaders combines the built-in format loaders with registered ones.
// Built-in loaders expand ${NAME} against the environment at call time.
func (c *Config) resolveLoaders() map[string]Loader {
	var expand func([]byte) ([]byte, error)
	if !c.options.DisableExpansion {
		vars := c.options.environ()
		expand = func(data []byte) ([]byte, error) {
			return expandEnv(data, vars)
		}
	}

	loaders := make(map[string]Loader, len(builtinSuffixes)+len(c.loaders))
	for suffix, format := range builtinSuffixes {
		loaders[suffix] = &FileLoader{Format: format, Expand: expand}
	}
	for suffix, loader := range c.loaders {
		loaders[suffix] = loader
	}
	return loaders
}

// listDir returns the configuration files directly inside dir, sorted by
// name. Subdirectories and files with no known suffix are skipped.
func listDir(dir string, loaders map[string]Loader) ([]sourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read config directory '%s': %w", dir, err)
	}

	// Longest suffix first so ".config.json" style registrations win over ".json"
	suffixes := make([]string, 0, len(loaders))
	for suffix := range loaders {
		suffixes = append(suffixes, suffix)
	}
	sort.Slice(suffixes, func(i, j int) bool {
		if len(suffixes[i]) != len(suffixes[j]) {
			return len(suffixes[i]) > len(suffixes[j])
		}
		return suffixes[i] < suffixes[j]
	})

	var files []sourceFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		for _, suffix := range suffixes {
			if !strings.HasSuffix(name, suffix) {
				continue
			}
			if key := strings.TrimSuffix(name, suffix); key != "" {
				files = append(files, sourceFile{
					key:    key,
					path:   filepath.Join(dir, name),
					loader: loaders[suffix],
				})
			}
			break
		}
	}

	return files, nil
}
