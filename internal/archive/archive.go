package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/thanksgrp/run-length/internal/config"
	"github.com/thanksgrp/run-length/sequence"
)

// ErrNotFound is returned when a key is not present in the archive.
var ErrNotFound = errors.New("archive: key not found")

// Record is the persisted form of a sequence of string values.
type Record = sequence.Record[string]

// Archive stores records by key.
type Archive interface {
	Put(ctx context.Context, key string, r Record) error
	Get(ctx context.Context, key string) (Record, error)
	Delete(ctx context.Context, key string) error
	// Keys returns the stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// Open opens the archive described by cfg, creating its data directory if
// needed.
func Open(cfg config.Archive, logger *slog.Logger) (Archive, error) {
	switch cfg.Backend {
	case config.BackendPebble, "":
		mode, err := parseFsync(cfg.Fsync)
		if err != nil {
			return nil, err
		}
		return OpenPebble(PebbleOptions{
			DataDir:       filepath.Join(cfg.DataDir, "pebble"),
			Fsync:         mode,
			FsyncInterval: time.Duration(cfg.FsyncIntervalMs) * time.Millisecond,
			Logger:        logger,
		})
	case config.BackendSQLite:
		return OpenSQLite(filepath.Join(cfg.DataDir, "runs.db"))
	}
	return nil, fmt.Errorf("archive: unknown backend %q", cfg.Backend)
}

// SaveStore writes every sequence of s to a.
func SaveStore(ctx context.Context, a Archive, s *sequence.Store[string]) error {
	for k, r := range s.Records() {
		if err := a.Put(ctx, k, r); err != nil {
			return fmt.Errorf("archive: put %q: %w", k, err)
		}
	}
	return nil
}

// LoadStore replaces the content of s with every record held by a.
func LoadStore(ctx context.Context, a Archive, s *sequence.Store[string]) error {
	keys, err := a.Keys(ctx)
	if err != nil {
		return err
	}
	records := make(map[string]Record, len(keys))
	for _, k := range keys {
		r, err := a.Get(ctx, k)
		if err != nil {
			return fmt.Errorf("archive: get %q: %w", k, err)
		}
		records[k] = r
	}
	return s.Restore(records)
}

func encode(r Record) ([]byte, error) {
	return json.Marshal(r)
}

func decode(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("archive: cannot decode record: %w", err)
	}
	return r, nil
}

func validKey(key string) error {
	if key == "" {
		return errors.New("archive: empty key")
	}
	return nil
}
