// Package store persists record collections for the shop. Each collection is
// a single JSON array in its own file, rewritten wholesale on every change.
// That is only workable for a single interactive session; nothing here locks
// the file against concurrent writers.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chalis/internal/models"
)

// Collection is one persisted record collection
type Collection[T any] struct {
	path string
}

// NewCollection creates a collection backed by the given file path
func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Path returns the backing file path
func (c *Collection[T]) Path() string {
	return c.path
}

// Load returns every stored record in insertion order. A missing, unreadable,
// or unparsable file reads as an empty collection; that fallback is part of
// the store contract, not an error.
func (c *Collection[T]) Load() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return []T{}
	}
	return records
}

// Save overwrites the collection file with the given records
func (c *Collection[T]) Save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return nil
}

// Append reads the collection, appends one record, and writes it back
func (c *Collection[T]) Append(record T) error {
	records := c.Load()
	records = append(records, record)
	return c.Save(records)
}
