package archive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cockroachdb/pebble"

	"github.com/thanksgrp/run-length/internal/config"
)

// FsyncMode defines durability behavior for write operations.
type FsyncMode int

const (
	FsyncModeUnspecified FsyncMode = iota
	// FsyncModeAlways requests a WAL fsync on each write.
	FsyncModeAlways
	// FsyncModeInterval lets Pebble coalesce WAL syncs for writes within
	// the configured interval.
	FsyncModeInterval
	// FsyncModeNever avoids forcing WAL syncs from the application.
	FsyncModeNever
)

var keyPrefix = []byte("runs/")

// PebbleOptions configures the Pebble backend.
type PebbleOptions struct {
	DataDir       string
	Fsync         FsyncMode
	FsyncInterval time.Duration
	// Logger receives Pebble's own log output. Optional.
	Logger *slog.Logger
}

// Pebble is an Archive backed by a Pebble database.
type Pebble struct {
	db        *pebble.DB
	writeSync bool
}

// OpenPebble creates or opens a Pebble database with the provided options.
func OpenPebble(opts PebbleOptions) (*Pebble, error) {
	if opts.DataDir == "" {
		return nil, errors.New("pebble: PebbleOptions.DataDir is required")
	}
	if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
		return nil, err
	}

	po := &pebble.Options{}
	switch opts.Fsync {
	case FsyncModeAlways, FsyncModeNever:
	case FsyncModeInterval:
		if opts.FsyncInterval <= 0 {
			opts.FsyncInterval = 5 * time.Millisecond
		}
		interval := opts.FsyncInterval
		po.WALMinSyncInterval = func() time.Duration { return interval }
	default:
		po.WALMinSyncInterval = func() time.Duration { return 5 * time.Millisecond }
	}
	if opts.Logger != nil {
		po.Logger = pebbleLogger{opts.Logger}
	}

	db, err := pebble.Open(opts.DataDir, po)
	if err != nil {
		return nil, err
	}
	return &Pebble{db: db, writeSync: opts.Fsync == FsyncModeAlways}, nil
}

// Put stores r under key.
func (p *Pebble) Put(_ context.Context, key string, r Record) error {
	if err := validKey(key); err != nil {
		return err
	}
	data, err := encode(r)
	if err != nil {
		return err
	}
	return p.db.Set(pebbleKey(key), data, p.syncMode())
}

// Get returns the record stored under key.
func (p *Pebble) Get(_ context.Context, key string) (Record, error) {
	val, closer, err := p.db.Get(pebbleKey(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return Record{}, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return Record{}, err
	}
	defer closer.Close()
	return decode(val)
}

// Delete removes key. Deleting a missing key is not an error.
func (p *Pebble) Delete(_ context.Context, key string) error {
	return p.db.Delete(pebbleKey(key), p.syncMode())
}

// Keys returns the stored keys in ascending order.
func (p *Pebble) Keys(ctx context.Context) ([]string, error) {
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: keyPrefix,
		UpperBound: prefixUpperBound(keyPrefix),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	var keys []string
	for iter.First(); iter.Valid(); iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		keys = append(keys, string(iter.Key()[len(keyPrefix):]))
	}
	return keys, iter.Error()
}

// Close closes the Pebble database.
func (p *Pebble) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}

func (p *Pebble) syncMode() *pebble.WriteOptions {
	if p.writeSync {
		return pebble.Sync
	}
	return pebble.NoSync
}

func pebbleKey(key string) []byte {
	return append(append([]byte(nil), keyPrefix...), key...)
}

// prefixUpperBound returns the smallest key greater than every key holding
// prefix.
func prefixUpperBound(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func parseFsync(s string) (FsyncMode, error) {
	switch s {
	case config.FsyncAlways:
		return FsyncModeAlways, nil
	case config.FsyncInterval:
		return FsyncModeInterval, nil
	case config.FsyncNever:
		return FsyncModeNever, nil
	case "":
		return FsyncModeUnspecified, nil
	}
	return FsyncModeUnspecified, fmt.Errorf("invalid fsync mode %q; use always|interval|never", s)
}

// pebbleLogger routes Pebble's log output to slog.
type pebbleLogger struct {
	l *slog.Logger
}

func (p pebbleLogger) Infof(format string, args ...interface{}) {
	p.l.Debug(fmt.Sprintf(format, args...))
}

func (p pebbleLogger) Errorf(format string, args ...interface{}) {
	p.l.Error(fmt.Sprintf(format, args...))
}

func (p pebbleLogger) Fatalf(format string, args ...interface{}) {
	p.l.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
