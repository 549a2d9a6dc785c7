package config

import (
	"os"
	"strconv"
)

// FromEnv overlays RUNLENGTH_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("RUNLENGTH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("RUNLENGTH_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("RUNLENGTH_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Precision = n
		}
	}
	if v := os.Getenv("RUNLENGTH_ARCHIVE_BACKEND"); v != "" {
		cfg.Archive.Backend = v
	}
	if v := os.Getenv("RUNLENGTH_ARCHIVE_DATA_DIR"); v != "" {
		cfg.Archive.DataDir = v
	}
	if v := os.Getenv("RUNLENGTH_ARCHIVE_FSYNC"); v != "" {
		cfg.Archive.Fsync = v
	}
	if v := os.Getenv("RUNLENGTH_ARCHIVE_FSYNC_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Archive.FsyncIntervalMs = n
		}
	}
}
