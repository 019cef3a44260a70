// FILE: lixenwraith/dirconfig/format.go
package dirconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported file formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Loader turns a configuration-source file into the value stored under its section key
type Loader interface {
	Load(path string) (any, error)
}

// LoaderFunc adapts a plain function to Loader
type LoaderFunc func(path string) (any, error)

// Load calls f(path)
func (f LoaderFunc) Load(path string) (any, error) {
	return f(path)
}

// builtinSuffixes maps recognised file suffixes to their format
var builtinSuffixes = map[string]string{
	".toml": FormatTOML,
	".tml":  FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
}

// FileLoader reads a file and decodes it in a fixed format
type FileLoader struct {
	Format string

	// Expand, when set, rewrites the raw content before decoding
	Expand func(data []byte) ([]byte, error)
}

// NewFileLoader returns a loader for one of the supported formats
func NewFileLoader(format string) (*FileLoader, error) {
	switch format {
	case FormatTOML, FormatYAML, FormatJSON:
		return &FileLoader{Format: format}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Load reads and decodes the file at path
func (l *FileLoader) Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if l.Expand != nil {
		if data, err = l.Expand(data); err != nil {
			return nil, fmt.Errorf("failed to expand variables in config file '%s': %w", path, err)
		}
	}

	value, err := decodeFormat(l.Format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s config file '%s': %w", l.Format, path, err)
	}
	return value, nil
}

// decodeFormat parses raw data. TOML documents are always tables; YAML and
// JSON documents may be scalars or sequences.
func decodeFormat(format string, data []byte) (any, error) {
	switch format {
	case FormatTOML:
		table := make(map[string]any)
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, err
		}
		return table, nil

	case FormatYAML:
		var value any
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, err
		}
		return value, nil

	case FormatJSON:
		var value any
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve integer precision
		if err := decoder.Decode(&value); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, err
		}
		return normalizeNumbers(value), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// normalizeNumbers converts json.Number into int64 when integral, float64 otherwise.
func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		for key, item := range v {
			v[key] = normalizeNumbers(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = normalizeNumbers(item)
		}
		return v
	default:
		return value
	}
}

// encodeFormat serialises a store snapshot.
func encodeFormat(w io.Writer, format string, data map[string]any) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(data)

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return err
		}
		return encoder.Close()

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
