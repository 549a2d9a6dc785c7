package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Archive backends.
const (
	BackendPebble = "pebble"
	BackendSQLite = "sqlite"
)

// Fsync modes of the pebble backend.
const (
	FsyncAlways   = "always"
	FsyncInterval = "interval"
	FsyncNever    = "never"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	LogLevel  string  `json:"logLevel"`
	LogFormat string  `json:"logFormat"`
	Precision int     `json:"precision"`
	Archive   Archive `json:"archive"`
}

// Archive configures where run encodings are persisted.
type Archive struct {
	Backend         string `json:"backend"`
	DataDir         string `json:"dataDir"`
	Fsync           string `json:"fsync"`
	FsyncIntervalMs int    `json:"fsyncIntervalMs"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Precision: 2,
		Archive: Archive{
			Backend:         BackendPebble,
			DataDir:         DefaultDataDir(),
			Fsync:           FsyncAlways,
			FsyncIntervalMs: 5,
		},
	}
}

// Load reads configuration from a JSON file. If path is empty, returns defaults.
// Fields missing from the file keep their default value.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Config{}, errors.New("yaml config not supported; use JSON")
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting of cfg.
func (cfg Config) Validate() error {
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q; use text|json", cfg.LogFormat)
	}
	if cfg.Precision < 0 {
		return fmt.Errorf("invalid precision %d", cfg.Precision)
	}
	switch cfg.Archive.Backend {
	case BackendPebble, BackendSQLite:
	default:
		return fmt.Errorf("invalid archive backend %q; use pebble|sqlite", cfg.Archive.Backend)
	}
	switch cfg.Archive.Fsync {
	case FsyncAlways, FsyncInterval, FsyncNever:
	default:
		return fmt.Errorf("invalid fsync mode %q; use always|interval|never", cfg.Archive.Fsync)
	}
	if cfg.Archive.DataDir == "" {
		return errors.New("archive data directory is required")
	}
	return nil
}
