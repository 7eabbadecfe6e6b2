// Package storage persists the current snapshots and the rolling
// history as one JSON document per named collection. It is best-effort
// durability: the in-memory state of the running process stays
// authoritative, so reads degrade to empty defaults and write failures
// are reported but never fatal.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store reads and writes named JSON collections inside a data directory.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a Store for it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads the named collection into dst (a pointer to the
// collection type). A missing or unreadable file leaves dst untouched:
// the caller's zero value is the empty default.
func (s *Store) Load(name string, dst any) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("Failed to read collection, using empty default", "name", name, "error", err)
		}
		return
	}

	if err := json.Unmarshal(data, dst); err != nil {
		slog.Warn("Failed to parse collection, using empty default", "name", name, "error", err)
	}
}

// Save writes the full collection, replacing prior content. The write
// goes through a temp file and rename so a crash mid-write never
// leaves a truncated document behind.
func (s *Store) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}

	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace collection %s: %w", name, err)
	}
	return nil
}
