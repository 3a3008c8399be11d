package store

import (
	"context"
	"testing"

	"yearbook/internal/config"
	"yearbook/internal/models"
)

func testTemplate(name string) models.Template {
	return models.Template{Name: name, Content: "content", CreatedAt: "2026-01-01T00:00:00Z"}
}

func TestOpenFallsBackWithoutDatabaseURL(t *testing.T) {
	cfg := &config.Config{DataDir: t.TempDir()}

	stores := Open(context.Background(), cfg)
	defer stores.Close()

	if stores.Backend != BackendFile {
		t.Errorf("backend = %q, want %q", stores.Backend, BackendFile)
	}
}

func TestOpenFallsBackOnBadDSN(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL: "this is not a connection string",
		DataDir:     t.TempDir(),
	}

	stores := Open(context.Background(), cfg)
	defer stores.Close()

	if stores.Backend != BackendFile {
		t.Errorf("backend = %q, want file fallback on unparseable DSN", stores.Backend)
	}

	// The fallback stores must be usable immediately.
	if err := stores.Templates.Insert(context.Background(), testTemplate("t1")); err != nil {
		t.Errorf("fallback store unusable: %v", err)
	}
}
