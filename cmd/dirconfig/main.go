// FILE: lixenwraith/dirconfig/cmd/dirconfig/main.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/dirconfig"
)

const appName = "dirconfig"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

// run parses args, loads the configuration directory and executes one command.
func run(args []string, stdout, stderr io.Writer) error {
	app := kingpin.New(appName, "Inspect configuration loaded from a directory with environment overlays")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)

	dir := app.Flag("dir", "Configuration directory (discovered when omitted)").Envar("DIRCONFIG_DIR").String()
	envName := app.Flag("env", "Overlay environment, overrides <env-prefix>ENV").String()
	envPrefix := app.Flag("env-prefix", "Prefix of the environment selector variable").Default(dirconfig.DefaultEnvPrefix).String()
	noExpand := app.Flag("no-expand", "Disable ${NAME} substitution in config files").Bool()
	falsyDefault := app.Flag("falsy-default", "Treat false, 0 and empty strings as missing in get").Bool()
	logLevel := app.Flag("log-level", "Log level").Default("warn").Enum("debug", "info", "warn", "error")
	overrides := app.Flag("set", "Set KEY=VALUE in memory after loading (repeatable)").Short('s').PlaceHolder("KEY=VALUE").StringMap()

	getCmd := app.Command("get", "Print the value at a dotted key")
	getKey := getCmd.Arg("key", "Dotted key, e.g. db.host").Required().String()
	getDefault := getCmd.Arg("default", "Value printed when the key is missing").Strings()

	dumpCmd := app.Command("dump", "Print the whole configuration")
	dumpFormat := dumpCmd.Flag("format", "Output format").Short('f').Default(dirconfig.FormatYAML).Enum(dirconfig.FormatTOML, dirconfig.FormatYAML, "yml", dirconfig.FormatJSON)

	sectionsCmd := app.Command("sections", "List top-level sections")
	keysCmd := app.Command("keys", "List every dotted leaf key")
	envCmd := app.Command("env", "Print the overlay environment that is merged")

	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(*logLevel, stderr)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	builder := dirconfig.NewBuilder().
		WithEnv(*envName).
		WithEnvPrefix(*envPrefix).
		WithLogger(logger)
	if *dir != "" {
		builder.WithDir(*dir)
	} else {
		builder.WithDirDiscovery(dirconfig.DefaultDiscoveryOptions(appName))
	}
	if *noExpand {
		builder.WithoutExpansion()
	}
	if *falsyDefault {
		builder.WithFalsyAsMissing()
	}

	cfg, err := builder.Build()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Shorter keys first so "db=..." does not clobber "db.host=..."
	keys := make([]string, 0, len(*overrides))
	for key := range *overrides {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		if _, err := cfg.Set(key, parseValue((*overrides)[key])); err != nil {
			return err
		}
		logger.Debug("applied override", zap.String("key", key))
	}

	switch command {
	case getCmd.FullCommand():
		var def []any
		if len(*getDefault) > 0 {
			def = append(def, parseValue((*getDefault)[0]))
		}
		value, err := cfg.Get(*getKey, def...)
		if err != nil {
			return err
		}
		return printValue(stdout, value)

	case dumpCmd.FullCommand():
		return cfg.Dump(stdout, *dumpFormat)

	case sectionsCmd.FullCommand():
		for _, section := range cfg.Sections() {
			fmt.Fprintln(stdout, section)
		}
		return nil

	case keysCmd.FullCommand():
		for _, key := range cfg.Keys() {
			fmt.Fprintln(stdout, key)
		}
		return nil

	case envCmd.FullCommand():
		name, err := cfg.Environment()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, name)
		return nil
	}

	return fmt.Errorf("unknown command %q", command)
}

// parseValue interprets a command-line value as YAML so "8080" and "true"
// become typed values; anything unparsable stays a string.
func parseValue(raw string) any {
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}

// printValue writes scalars verbatim and sections or lists as indented JSON.
func printValue(w io.Writer, value any) error {
	switch v := value.(type) {
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	case map[string]any, []any, []map[string]any, nil:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}
