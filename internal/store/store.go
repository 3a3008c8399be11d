// Package store provides bounded, newest-first record collections backed by
// either Postgres (JSONB documents) or local JSON files. The backend is
// selected once at process start and never changes.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoKey is returned by Update and Delete on collections declared without
// a key field.
var ErrNoKey = errors.New("collection has no key field")

// Collection is backend-independent access to one record collection.
//
// Reads fail soft: GetAll returns an empty result on any read or decode
// error so callers can degrade gracefully. Write failures propagate.
type Collection[T any] interface {
	// GetAll returns all retained records, newest first.
	GetAll(ctx context.Context) []T

	// Insert adds rec as the newest record, then enforces the retention cap
	// by evicting the oldest excess records.
	Insert(ctx context.Context, rec T) error

	// Seed bulk-prepends recs ahead of the existing records, preserving the
	// batch order, then applies the retention cap.
	Seed(ctx context.Context, recs []T) error

	// Update merges patch into the record whose key field equals key. The
	// boolean reports whether a record matched.
	Update(ctx context.Context, key string, patch map[string]any) (bool, error)

	// Delete removes exactly one record whose key field equals key. The
	// boolean reports whether anything was removed.
	Delete(ctx context.Context, key string) (bool, error)
}

// Spec describes a collection independently of its backend.
type Spec struct {
	Name string // collection name; also the file stem for the file backend
	Key  string // JSON field treated as the primary key, "" if none
	Cap  int    // retention cap, 0 = unbounded
}

// Collection specs shared by both backends. Messages are capped at 100;
// links and templates are deliberately unbounded.
var (
	MessagesSpec  = Spec{Name: "guestbook", Cap: 100}
	LinksSpec     = Spec{Name: "personalized_links", Key: "slug"}
	TemplatesSpec = Spec{Name: "message_templates", Key: "name"}
)

// keyOf extracts the record's key field via its JSON form.
func keyOf[T any](rec T, field string) (string, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return "", err
	}
	v, _ := m[field].(string)
	return v, nil
}

// mergeInto applies patch on top of rec's JSON form and decodes the result
// back into rec. Fields absent from patch keep their current values.
func mergeInto[T any](rec *T, patch map[string]any) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	for k, v := range patch {
		m[k] = v
	}
	merged, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode merged record: %w", err)
	}
	return json.Unmarshal(merged, rec)
}
