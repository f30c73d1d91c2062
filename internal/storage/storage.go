// Package storage is a quota-aware key-value store over JSON files in a
// single directory. Every failure is contained at this boundary: writes
// report success as a bool, reads fall back to the caller's default and
// nothing panics or propagates an error upward.
package storage

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Keys shared across the app.
const (
	KeyData       = "bucketlist_data"
	KeyHistory    = "bucketlist_history"
	KeyOnboarding = "bucketlist_onboarding"
)

// MaxBytes is the store-wide ceiling, matching the 5 MiB budget of the
// browser origin the data model came from.
const MaxBytes = 5 * 1024 * 1024

const sentinelKey = "storage_probe"

type SafeStore struct {
	dir    string
	log    *slog.Logger
	onWarn func(msg string)
}

func New(dir string, log *slog.Logger) *SafeStore {
	if log == nil {
		log = slog.Default()
	}
	return &SafeStore{dir: dir, log: log}
}

// Dir returns the directory backing the store.
func (s *SafeStore) Dir() string {
	return s.dir
}

// OnWarn registers a hook fired when a write is rejected or fails. The
// TUI uses it to surface a transient capacity warning.
func (s *SafeStore) OnWarn(fn func(msg string)) {
	s.onWarn = fn
}

// Set serializes value and writes it under key. It returns false,
// leaving the store untouched, when the payload would push total usage
// past MaxBytes or when the write itself fails.
func (s *SafeStore) Set(key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("marshal failed", "key", key, "err", err)
		s.warn("Could not save your data.")
		return false
	}
	if s.UsedSpace()+len(data) > MaxBytes {
		s.log.Warn("write rejected, store full", "key", key, "payload", len(data))
		s.warn("Storage is full. Changes are no longer being saved.")
		return false
	}
	if err := s.write(key, data); err != nil {
		s.log.Error("write failed", "key", key, "err", err)
		s.warn("Could not save your data.")
		return false
	}
	return true
}

// Get reads key into out and reports whether it succeeded. A missing or
// malformed payload is swallowed (malformed ones are logged) and the
// caller keeps its default; out must only be used when Get returns true.
func (s *SafeStore) Get(key string, out any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Error("read failed", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn("discarding malformed payload", "key", key, "err", err)
		return false
	}
	return true
}

// Remove deletes key, best effort.
func (s *SafeStore) Remove(key string) {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Error("remove failed", "key", key, "err", err)
	}
}

// Clear deletes every entry in the store, best effort.
func (s *SafeStore) Clear() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Error("clear failed", "err", err)
		}
		return
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			s.log.Error("clear failed", "entry", e.Name(), "err", err)
		}
	}
}

// IsAvailable probes the store with a sentinel write and delete round
// trip. Any failure yields false.
func (s *SafeStore) IsAvailable() bool {
	if err := s.write(sentinelKey, []byte(`"ok"`)); err != nil {
		return false
	}
	if err := os.Remove(s.path(sentinelKey)); err != nil {
		return false
	}
	return true
}

// UsedSpace sums key and payload lengths over every entry in the store
// directory, not just this module's keys. The measurement is global on
// purpose: the ceiling models a quota shared with anything else living
// in the same store.
func (s *SafeStore) UsedSpace() int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0
	}
	total := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		total += len(strings.TrimSuffix(e.Name(), ".json")) + int(info.Size())
	}
	return total
}

func (s *SafeStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// write lands the payload atomically via a temp file and rename so a
// crash mid-write never leaves a truncated entry behind.
func (s *SafeStore) write(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, s.path(key))
}

func (s *SafeStore) warn(msg string) {
	if s.onWarn != nil {
		s.onWarn(msg)
	}
}
