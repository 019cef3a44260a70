// FILE: lixenwraith/dirconfig/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/dirconfig"
)

// ServerConfig is decoded from the "server" section.
type ServerConfig struct {
	Host     string        `toml:"host"`
	Port     int64         `toml:"port"`
	LogLevel string        `toml:"log_level"`
	Timeout  time.Duration `toml:"timeout"`
}

func main() {
	// =========================================================================
	// PART 1: INITIAL SETUP
	// Create a config directory with base files and a production overlay.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Creating configuration directory...")

	dir, err := os.MkdirTemp("", "dirconfig-example-")
	if err != nil {
		log.Fatalf("❌ Failed to create directory: %v", err)
	}
	defer func() {
		log.Println("---")
		log.Println("🧹 Cleaning up...")
		os.RemoveAll(dir)
	}()

	files := map[string]string{
		"server.toml":            "host = \"localhost\"\nport = 8080\nlog_level = \"info\"\ntimeout = \"30s\"\n",
		"features.yaml":          "metrics: true\ntracing: false\n",
		"production/server.toml": "host = \"0.0.0.0\"\nport = ${PORT:-80}\nlog_level = \"warn\"\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			log.Fatalf("❌ Failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			log.Fatalf("❌ Failed to write %s: %v", path, err)
		}
	}
	log.Printf("✅ Configuration written to %s.", dir)

	// =========================================================================
	// PART 2: BASE CONFIGURATION
	// With no selector variable the development overlay is used, which does
	// not exist here, so only the base files apply.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Loading base configuration...")

	cfg, err := dirconfig.NewBuilder().
		WithDir(dir).
		WithEnvironment(map[string]string{}).
		Build()
	if err != nil {
		log.Fatalf("❌ Builder failed: %v", err)
	}
	printState(cfg, "Base (development)")

	// =========================================================================
	// PART 3: PRODUCTION OVERLAY
	// APP_ENV=production merges production/server.toml over the base section.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Loading with APP_ENV=production and PORT=9000...")

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	var server ServerConfig
	prod, err := dirconfig.NewBuilder().
		WithDir(dir).
		WithEnvironment(map[string]string{"APP_ENV": "production", "PORT": "9000"}).
		WithLogger(logger).
		BuildAndScan("server", &server)
	if err != nil {
		log.Fatalf("❌ Builder failed: %v", err)
	}
	printState(prod, "Production")
	log.Printf("✅ Scanned server section: %+v", server)

	// =========================================================================
	// PART 4: RUNTIME VALUES
	// Set writes into the in-memory store; Get falls back to a default.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 4: Setting values at runtime...")

	prod.Set("features.tracing", true)
	limit, _ := prod.Get("limits.requests", 100)
	tracing, _ := prod.Get("features.tracing")
	log.Printf("✅ limits.requests (default) = %v, features.tracing = %v", limit, tracing)

	if err := prod.Dump(os.Stdout, "yaml"); err != nil {
		log.Fatalf("❌ Dump failed: %v", err)
	}
}

// printState displays the values this example cares about.
func printState(cfg *dirconfig.Config, title string) {
	host, _ := cfg.String("server.host")
	port, _ := cfg.Int64("server.port")
	level, _ := cfg.String("server.log_level")
	timeout, _ := cfg.Get("server.timeout")
	metrics, _ := cfg.Bool("features.metrics")

	fmt.Println("   --------------------------------------------------")
	fmt.Printf("             %s\n", title)
	fmt.Println("   --------------------------------------------------")
	fmt.Printf("     Server Host:      %s\n", host)
	fmt.Printf("     Server Port:      %d\n", port)
	fmt.Printf("     Server Log Level: %s\n", level)
	fmt.Printf("     Server Timeout:   %v\n", timeout)
	fmt.Printf("     Metrics Enabled:  %v\n", metrics)
	fmt.Println("   --------------------------------------------------")
}
