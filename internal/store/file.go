package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileOptions configures a file-backed collection.
type FileOptions struct {
	// Locked serializes the read-modify-write cycle with a per-collection
	// mutex. Without it two near-simultaneous writers can race and one
	// update can be lost, matching the historical file-store behaviour.
	Locked bool
}

// FileCollection stores a collection as a single JSON array file, newest
// record first. Every write rewrites the whole file.
type FileCollection[T any] struct {
	path string
	spec Spec
	mu   *sync.Mutex // nil when unlocked
}

// NewFile creates a file-backed collection under dir. The file is created
// lazily on first write.
func NewFile[T any](dir string, spec Spec, opts FileOptions) *FileCollection[T] {
	c := &FileCollection[T]{
		path: filepath.Join(dir, spec.Name+".json"),
		spec: spec,
	}
	if opts.Locked {
		c.mu = &sync.Mutex{}
	}
	return c
}

// Path returns the backing file path.
func (c *FileCollection[T]) Path() string {
	return c.path
}

func (c *FileCollection[T]) lock() func() {
	if c.mu == nil {
		return func() {}
	}
	c.mu.Lock()
	return c.mu.Unlock
}

// GetAll returns all records newest-first. A missing, unreadable, or
// malformed file yields an empty result.
func (c *FileCollection[T]) GetAll(_ context.Context) []T {
	return c.readAll()
}

func (c *FileCollection[T]) readAll() []T {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil
	}
	var recs []T
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil
	}
	return recs
}

func (c *FileCollection[T]) writeAll(recs []T) error {
	if c.spec.Cap > 0 && len(recs) > c.spec.Cap {
		recs = recs[:c.spec.Cap]
	}
	raw, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.spec.Name, err)
	}
	if err := os.WriteFile(c.path, raw, 0644); err != nil {
		return fmt.Errorf("write %s: %w", c.spec.Name, err)
	}
	return nil
}

// Insert prepends rec and rewrites the file, truncated to the cap.
func (c *FileCollection[T]) Insert(_ context.Context, rec T) error {
	defer c.lock()()
	recs := append([]T{rec}, c.readAll()...)
	return c.writeAll(recs)
}

// Seed prepends the whole batch ahead of existing records.
func (c *FileCollection[T]) Seed(_ context.Context, batch []T) error {
	defer c.lock()()
	recs := append(append([]T{}, batch...), c.readAll()...)
	return c.writeAll(recs)
}

// Update merges patch into the first record whose key field equals key.
func (c *FileCollection[T]) Update(_ context.Context, key string, patch map[string]any) (bool, error) {
	if c.spec.Key == "" {
		return false, ErrNoKey
	}
	defer c.lock()()
	recs := c.readAll()
	for i := range recs {
		k, err := keyOf(recs[i], c.spec.Key)
		if err != nil {
			return false, err
		}
		if k != key {
			continue
		}
		if err := mergeInto(&recs[i], patch); err != nil {
			return false, err
		}
		return true, c.writeAll(recs)
	}
	return false, nil
}

// Delete removes the first record whose key field equals key.
func (c *FileCollection[T]) Delete(_ context.Context, key string) (bool, error) {
	if c.spec.Key == "" {
		return false, ErrNoKey
	}
	defer c.lock()()
	recs := c.readAll()
	for i := range recs {
		k, err := keyOf(recs[i], c.spec.Key)
		if err != nil {
			return false, err
		}
		if k == key {
			recs = append(recs[:i], recs[i+1:]...)
			return true, c.writeAll(recs)
		}
	}
	return false, nil
}
