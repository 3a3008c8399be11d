// Package testutil provides test utilities and helpers.
package testutil

import (
	"testing"

	"yearbook/internal/models"
	"yearbook/internal/store"
)

// TempStores creates file-backed stores in a temporary directory with the
// write lock enabled, matching the server's file-backend configuration.
func TempStores(t *testing.T) *store.Stores {
	t.Helper()

	dir := t.TempDir()
	opts := store.FileOptions{Locked: true}
	return &store.Stores{
		Backend:   store.BackendFile,
		Messages:  store.NewFile[models.Message](dir, store.MessagesSpec, opts),
		Links:     store.NewFile[models.Link](dir, store.LinksSpec, opts),
		Templates: store.NewFile[models.Template](dir, store.TemplatesSpec, opts),
	}
}

// BoolPtr returns a pointer to b, for building messages with an explicit
// is_public value.
func BoolPtr(b bool) *bool {
	return &b
}
