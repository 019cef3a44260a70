// FILE: lixenwraith/dirconfig/format_test.go
package dirconfig

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeFormat tests the built-in parsers
func TestDecodeFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		input    string
		expected any
	}{
		{"TOMLTable", FormatTOML, "a = 1\n[b]\nc = \"d\"\n", map[string]any{"a": int64(1), "b": map[string]any{"c": "d"}}},
		{"TOMLEmpty", FormatTOML, "", map[string]any{}},
		{"YAMLMap", FormatYAML, "a: 1\nb:\n  c: d\n", map[string]any{"a": 1, "b": map[string]any{"c": "d"}}},
		{"YAMLScalar", FormatYAML, "3000\n", 3000},
		{"YAMLList", FormatYAML, "- x\n- y\n", []any{"x", "y"}},
		{"YAMLEmpty", FormatYAML, "", nil},
		{"JSONObject", FormatJSON, `{"a": 1, "b": {"c": [2, 2.5]}}`, map[string]any{"a": int64(1), "b": map[string]any{"c": []any{int64(2), 2.5}}}},
		{"JSONScalar", FormatJSON, `3000`, int64(3000)},
		{"JSONString", FormatJSON, `"text"`, "text"},
		{"JSONEmpty", FormatJSON, ``, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := decodeFormat(tt.format, []byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, val)
		})
	}

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := decodeFormat("ini", []byte("a=1"))
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("LargeJSONInteger", func(t *testing.T) {
		val, err := decodeFormat(FormatJSON, []byte(`9007199254740993`))
		require.NoError(t, err)
		assert.Equal(t, int64(9007199254740993), val)
	})
}

// TestFileLoader tests reading files with expansion
func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"server.yaml": "host: ${HOST:-localhost}\nport: ${PORT}\n",
	})
	path := filepath.Join(dir, "server.yaml")

	t.Run("WithExpansion", func(t *testing.T) {
		loader, err := NewFileLoader(FormatYAML)
		require.NoError(t, err)
		loader.Expand = func(data []byte) ([]byte, error) {
			return expandEnv(data, map[string]string{"PORT": "8080"})
		}

		val, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"host": "localhost", "port": 8080}, val)
	})

	t.Run("WithoutExpansion", func(t *testing.T) {
		loader, err := NewFileLoader(FormatYAML)
		require.NoError(t, err)

		val, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "${HOST:-localhost}", val.(map[string]any)["host"])
	})

	t.Run("ExpansionFailure", func(t *testing.T) {
		loader, err := NewFileLoader(FormatYAML)
		require.NoError(t, err)
		loader.Expand = func([]byte) ([]byte, error) {
			return nil, errors.New("bad substitution")
		}

		_, err = loader.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to expand variables in config file")
		assert.Contains(t, err.Error(), "bad substitution")
	})

	t.Run("MissingFile", func(t *testing.T) {
		loader, err := NewFileLoader(FormatTOML)
		require.NoError(t, err)

		_, err = loader.Load(filepath.Join(dir, "missing.toml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := NewFileLoader("xml")
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

// TestExpandEnv tests variable substitution against an injected environment
func TestExpandEnv(t *testing.T) {
	vars := map[string]string{"PORT": "8080", "EMPTY": "", "HOST": "example.com"}

	tests := []struct {
		input    string
		expected string
	}{
		{"${PORT}", "8080"},
		{"port = ${PORT}", "port = 8080"},
		{"$PORT", "8080"},
		{"${MISSING}", ""},
		{"${MISSING:-3000}", "3000"},
		{"${EMPTY:-fallback}", "fallback"},
		{"${HOST:-localhost}:${PORT}", "example.com:8080"},
		{"no variables here", "no variables here"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expanded, err := expandEnv([]byte(tt.input), vars)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(expanded))
		})
	}
}

// TestEncodeFormat tests dumping a store in each format
func TestEncodeFormat(t *testing.T) {
	data := map[string]any{
		"port":  int64(3000),
		"hello": map[string]any{"world": "Hello world!"},
	}

	for _, format := range []string{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encodeFormat(&buf, format, data))

			decoded, err := decodeFormat(format, buf.Bytes())
			require.NoError(t, err)

			decodedMap := decoded.(map[string]any)
			port, _ := Lookup(decodedMap, "port")
			assert.EqualValues(t, 3000, port)
			world, _ := Lookup(decodedMap, "hello.world")
			assert.Equal(t, "Hello world!", world)
		})
	}

	t.Run("UnknownFormat", func(t *testing.T) {
		var buf bytes.Buffer
		assert.ErrorIs(t, encodeFormat(&buf, "xml", data), ErrUnknownFormat)
	})
}
