// FILE: lixenwraith/dirconfig/cmd/dirconfig/main_test.go
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDir writes a base directory with a production overlay
func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"port.yaml":            "3000\n",
		"db.toml":              "host = \"localhost\"\nenabled = false\n",
		"production/port.yaml": "${PORT:-8080}\n",
		"production/db.toml":   "host = \"db.internal\"\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	return dir
}

// runCLI executes run and returns stdout
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestGetCommand(t *testing.T) {
	dir := setupDir(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"Scalar", []string{"--dir", dir, "get", "port"}, "3000\n"},
		{"Dotted", []string{"--dir", dir, "get", "db.host"}, "localhost\n"},
		{"Overlay", []string{"--dir", dir, "--env", "production", "get", "db.host"}, "db.internal\n"},
		{"OverlayFallback", []string{"--dir", dir, "--env", "production", "get", "port"}, "8080\n"},
		{"Default", []string{"--dir", dir, "get", "db.user", "admin"}, "admin\n"},
		{"MissingIsNull", []string{"--dir", dir, "get", "db.user"}, "null\n"},
		{"FalseReturned", []string{"--dir", dir, "get", "db.enabled", "true"}, "false\n"},
		{"FalsyDefault", []string{"--dir", dir, "--falsy-default", "get", "db.enabled", "true"}, "true\n"},
		{"Override", []string{"--dir", dir, "-s", "db.host=remote", "get", "db.host"}, "remote\n"},
		{"OverrideOrder", []string{"--dir", dir, "--set", "db.host=remote", "--set", "db=reset", "get", "db.host"}, "remote\n"},
		{"NoExpand", []string{"--dir", dir, "--env", "production", "--no-expand", "get", "port"}, "${PORT:-8080}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	t.Run("Section", func(t *testing.T) {
		out, err := runCLI(t, "--dir", dir, "get", "db")
		require.NoError(t, err)
		assert.JSONEq(t, `{"host": "localhost", "enabled": false}`, out)
	})

	t.Run("EnvPrefix", func(t *testing.T) {
		t.Setenv("NODE_ENV", "production")
		out, err := runCLI(t, "--dir", dir, "--env-prefix", "NODE_", "get", "db.host")
		require.NoError(t, err)
		assert.Equal(t, "db.internal\n", out)
	})

	t.Run("EmptyEnvPrefix", func(t *testing.T) {
		t.Setenv("ENV", "production")
		out, err := runCLI(t, "--dir", dir, "--env-prefix", "", "get", "db.host")
		require.NoError(t, err)
		assert.Equal(t, "db.internal\n", out)
	})
}

func TestDumpCommand(t *testing.T) {
	dir := setupDir(t)

	out, err := runCLI(t, "--dir", dir, "dump", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"port": 3000, "db": {"host": "localhost", "enabled": false}}`, out)

	out, err = runCLI(t, "--dir", dir, "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "port: 3000")
	assert.Contains(t, out, "host: localhost")
}

func TestListingCommands(t *testing.T) {
	dir := setupDir(t)

	out, err := runCLI(t, "--dir", dir, "sections")
	require.NoError(t, err)
	assert.Equal(t, []string{"db", "port"}, strings.Fields(out))

	out, err = runCLI(t, "--dir", dir, "keys")
	require.NoError(t, err)
	assert.Equal(t, []string{"db.enabled", "db.host", "port"}, strings.Fields(out))

	out, err = runCLI(t, "--dir", dir, "env")
	require.NoError(t, err)
	assert.Equal(t, "development\n", out)

	out, err = runCLI(t, "--dir", dir, "--env", "qa", "env")
	require.NoError(t, err)
	assert.Equal(t, "qa\n", out)
}

func TestRunErrors(t *testing.T) {
	t.Run("MissingDirectory", func(t *testing.T) {
		_, err := runCLI(t, "--dir", filepath.Join(t.TempDir(), "missing"), "sections")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load configuration")
	})

	t.Run("UnknownCommand", func(t *testing.T) {
		_, err := runCLI(t, "frobnicate")
		assert.Error(t, err)
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		_, err := runCLI(t, "--log-level", "verbose", "sections")
		assert.Error(t, err)
	})
}

func TestDebugLogging(t *testing.T) {
	dir := setupDir(t)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--dir", dir, "--log-level", "debug", "sections"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `"msg":"configuration loaded"`)
	assert.Contains(t, stderr.String(), `"timestamp"`)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger("info", &buf)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = newLogger("loud", &buf)
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, 8080, parseValue("8080"))
	assert.Equal(t, true, parseValue("true"))
	assert.Equal(t, "text", parseValue("text"))
	assert.Equal(t, "a: [", parseValue("a: ["))
	assert.Nil(t, parseValue(""))
}
