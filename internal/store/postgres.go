package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"yearbook/migrations"
)

// PGCollection stores records as JSONB rows in a shared documents table.
// The serial id column carries insertion order, so "newest" is simply the
// highest id for the collection.
type PGCollection[T any] struct {
	pool *pgxpool.Pool
	spec Spec
}

// NewPG creates a Postgres-backed collection on an existing pool.
func NewPG[T any](pool *pgxpool.Pool, spec Spec) *PGCollection[T] {
	return &PGCollection[T]{pool: pool, spec: spec}
}

// Connect creates a connection pool, verifies connectivity, and runs the
// embedded migrations. Any failure is returned so the caller can fall back
// to file storage.
func Connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := runMigrations(connString); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// runMigrations runs all embedded SQL migrations.
func runMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// GetAll returns retained records newest-first. Query or decode failures
// yield an empty result.
func (c *PGCollection[T]) GetAll(ctx context.Context) []T {
	query := `SELECT doc FROM documents WHERE collection = $1 ORDER BY id DESC`
	if c.spec.Cap > 0 {
		query += ` LIMIT ` + strconv.Itoa(c.spec.Cap)
	}

	rows, err := c.pool.Query(ctx, query, c.spec.Name)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var recs []T
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil
		}
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil
		}
		recs = append(recs, rec)
	}
	if rows.Err() != nil {
		return nil
	}
	return recs
}

// Insert appends rec and trims the collection down to the retention cap.
// The trim runs after the insert and is not transactional with it; a
// concurrent insert can transiently overshoot the cap, which self-corrects
// on the next insert.
func (c *PGCollection[T]) Insert(ctx context.Context, rec T) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.spec.Name, err)
	}

	_, err = c.pool.Exec(ctx,
		`INSERT INTO documents (collection, doc) VALUES ($1, $2)`,
		c.spec.Name, raw)
	if err != nil {
		return fmt.Errorf("insert %s: %w", c.spec.Name, err)
	}

	return c.trim(ctx)
}

// trim deletes every row older than the cap'th newest one. With fewer rows
// than the cap the subselect is empty and nothing is deleted.
func (c *PGCollection[T]) trim(ctx context.Context) error {
	if c.spec.Cap == 0 {
		return nil
	}
	_, err := c.pool.Exec(ctx, `
		DELETE FROM documents
		WHERE collection = $1 AND id < (
			SELECT id FROM documents
			WHERE collection = $1
			ORDER BY id DESC
			LIMIT 1 OFFSET $2
		)`, c.spec.Name, c.spec.Cap-1)
	if err != nil {
		return fmt.Errorf("trim %s: %w", c.spec.Name, err)
	}
	return nil
}

// Seed inserts the batch in reverse so batch[0] ends up newest, matching
// the file backend's prepend order, then trims to the cap.
func (c *PGCollection[T]) Seed(ctx context.Context, batch []T) error {
	for i := len(batch) - 1; i >= 0; i-- {
		raw, err := json.Marshal(batch[i])
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.spec.Name, err)
		}
		_, err = c.pool.Exec(ctx,
			`INSERT INTO documents (collection, doc) VALUES ($1, $2)`,
			c.spec.Name, raw)
		if err != nil {
			return fmt.Errorf("seed %s: %w", c.spec.Name, err)
		}
	}
	return c.trim(ctx)
}

// Update merges patch into the document whose key field equals key.
func (c *PGCollection[T]) Update(ctx context.Context, key string, patch map[string]any) (bool, error) {
	if c.spec.Key == "" {
		return false, ErrNoKey
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return false, fmt.Errorf("encode patch: %w", err)
	}

	tag, err := c.pool.Exec(ctx,
		`UPDATE documents SET doc = doc || $1::jsonb WHERE collection = $2 AND doc->>$3 = $4`,
		raw, c.spec.Name, c.spec.Key, key)
	if err != nil {
		return false, fmt.Errorf("update %s: %w", c.spec.Name, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes exactly one document whose key field equals key.
func (c *PGCollection[T]) Delete(ctx context.Context, key string) (bool, error) {
	if c.spec.Key == "" {
		return false, ErrNoKey
	}
	tag, err := c.pool.Exec(ctx, `
		DELETE FROM documents
		WHERE id = (
			SELECT id FROM documents
			WHERE collection = $1 AND doc->>$2 = $3
			ORDER BY id DESC
			LIMIT 1
		)`, c.spec.Name, c.spec.Key, key)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", c.spec.Name, err)
	}
	return tag.RowsAffected() > 0, nil
}
