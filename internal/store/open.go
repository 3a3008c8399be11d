package store

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"yearbook/internal/config"
	"yearbook/internal/models"
)

// Backend identifies which storage backend was selected at boot.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendFile     Backend = "file"
)

// Stores bundles the three record collections behind one boot-time backend
// decision. The decision is irrevocable for the process lifetime: there is
// no reconnect or retry once the file fallback has been taken.
type Stores struct {
	Backend   Backend
	Messages  Collection[models.Message]
	Links     Collection[models.Link]
	Templates Collection[models.Template]

	pool *pgxpool.Pool
}

// Open probes the configured database endpoint once and wires all three
// collections to Postgres on success, or to local JSON files otherwise.
// A single shared connection string drives the decision for every store.
func Open(ctx context.Context, cfg *config.Config) *Stores {
	if cfg.DatabaseURL != "" {
		pool, err := Connect(ctx, cfg.DatabaseURL)
		if err == nil {
			log.Println("Connected to Postgres document store")
			return &Stores{
				Backend:   BackendPostgres,
				Messages:  NewPG[models.Message](pool, MessagesSpec),
				Links:     NewPG[models.Link](pool, LinksSpec),
				Templates: NewPG[models.Template](pool, TemplatesSpec),
				pool:      pool,
			}
		}
		log.Printf("Warning: database unavailable, falling back to local JSON storage: %v", err)
	} else {
		log.Println("DATABASE_URL not set, using local JSON storage")
	}

	// The file stores serialize their read-modify-write cycle; the lock is
	// a deliberate deviation from the historical unlocked behaviour.
	opts := FileOptions{Locked: true}
	return &Stores{
		Backend:   BackendFile,
		Messages:  NewFile[models.Message](cfg.DataDir, MessagesSpec, opts),
		Links:     NewFile[models.Link](cfg.DataDir, LinksSpec, opts),
		Templates: NewFile[models.Template](cfg.DataDir, TemplatesSpec, opts),
	}
}

// Close releases the connection pool when the Postgres backend is active.
func (s *Stores) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
