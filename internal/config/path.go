package config

import (
	"os"
	"path/filepath"
)

// DefaultDataDir returns the default data directory based on the host OS.
// It prefers standard locations when available and falls back to a dotdir
// in the user's home directory.
func DefaultDataDir() string {
	homeDir := HomeDir()
	if homeDir == "" {
		return "./data"
	}

	// XDG (Linux) override
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "run-length")
	}

	// macOS: ~/Library/Application Support/RunLength
	if isDir(filepath.Join(homeDir, "Library")) {
		return filepath.Join(homeDir, "Library", "Application Support", "RunLength")
	}

	// Windows: %USERPROFILE%/AppData/Local/RunLength
	if isDir(filepath.Join(homeDir, "AppData")) {
		return filepath.Join(homeDir, "AppData", "Local", "RunLength")
	}

	return filepath.Join(homeDir, ".run-length")
}

// HomeDir returns the home directory of the current user, or an empty
// string if it cannot be determined.
func HomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return homeDir
}

// EnsureParentDir creates the directory holding path, and any missing
// parent, if it does not exist yet.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if isDir(dir) {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
