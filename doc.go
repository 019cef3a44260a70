// FILE: lixenwraith/dirconfig/doc.go

// Package dirconfig loads application configuration from a directory of
// files, merges an environment-specific overlay on top, and exposes
// get/set accessors over dotted key paths such as "db.host".
//
// Directory layout:
//
//	config/
//	    port.yaml          # 3000
//	    hello.toml         # world = "Hello world!"
//	    db.json            # {"host": "localhost", "pool": {"size": 4}}
//	    production/
//	        port.yaml      # ${PORT:-8080}
//	        db.json        # {"host": "db.internal"}
//
// Every file directly inside the directory becomes one section keyed by its
// name without suffix, replacing any previous value of that section. The
// subdirectory named after the active environment (APP_ENV, default
// "development") is then merged in: maps merge recursively, everything else
// is replaced.
//
// Quick Start:
//
//	cfg, err := dirconfig.Quick("config")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port, _ := cfg.Get("port", 3000)
//	host, _ := cfg.String("db.host")
//
//	cfg.Set("db.pool.size", 8)
//	all := cfg.Snapshot() // deep copy, safe to modify
//
// Builder:
//
//	cfg, err := dirconfig.NewBuilder().
//	    WithDirDiscovery(dirconfig.DefaultDiscoveryOptions("myapp")).
//	    WithEnvPrefix("MYAPP_").
//	    WithLogger(logger).
//	    Build()
//
// Formats: TOML (.toml, .tml), YAML (.yaml, .yml) and JSON (.json) are built
// in; RegisterLoader adds others. Built-in loaders substitute $NAME, ${NAME}
// and ${NAME:-fallback} from the environment before parsing.
//
// Thread Safety:
// A Config guards its store with a read-write mutex. Load holds the write
// lock for its whole duration, so readers never observe a half-merged store.
package dirconfig
