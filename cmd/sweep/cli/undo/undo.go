// Package undo persists the one-slot record of the last clean run. The slot
// is overwritten on every clean that writes files and cleared after a single
// undo; there is no history beyond the most recent run.
package undo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNoRecord is returned by Load when there is nothing to undo.
var ErrNoRecord = errors.New("no undo record")

// Record is the undo buffer: the original text of every file modified by the
// last clean run, keyed by path as it was cleaned.
type Record struct {
	SavedAt time.Time         `json:"saved_at"`
	Files   map[string]string `json:"files"`
}

func recordPath(gitDir string) string {
	return filepath.Join(gitDir, "sweep", "undo.json")
}

// Save writes the record, replacing any previous one.
func Save(gitDir string, rec Record) error {
	path := recordPath(gitDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create undo directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal undo record: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write undo record: %w", err)
	}
	return nil
}

// Load reads the current record. Returns ErrNoRecord if none exists.
func Load(gitDir string) (Record, error) {
	data, err := os.ReadFile(recordPath(gitDir)) //nolint:gosec // path is derived from the git dir
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, ErrNoRecord
		}
		return Record{}, fmt.Errorf("failed to read undo record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("failed to parse undo record: %w", err)
	}
	return rec, nil
}

// Clear removes the record. Clearing an already-empty slot is not an error.
func Clear(gitDir string) error {
	if err := os.Remove(recordPath(gitDir)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove undo record: %w", err)
	}
	return nil
}
