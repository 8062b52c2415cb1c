// Package sqlstore persists collection documents in an embedded SQLite database.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/repository"
)

const schema = `CREATE TABLE IF NOT EXISTS collections (
	kind       TEXT PRIMARY KEY,
	version    INTEGER NOT NULL,
	payload    BLOB NOT NULL,
	updated_at DATETIME NOT NULL
)`

const (
	loadQuery = `SELECT payload FROM collections WHERE kind = ?`
	saveQuery = `INSERT INTO collections (kind, version, payload, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(kind) DO UPDATE SET
	version = excluded.version,
	payload = excluded.payload,
	updated_at = excluded.updated_at`
)

// Store is a repository.Backend keeping one row per collection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New ensures the collections table exists on db.
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create collections table: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Load returns the stored document of kind.
func (s *Store) Load(ctx context.Context, kind domain.Collection) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, loadQuery, string(kind)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotStored
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}
	return payload, nil
}

// Save upserts the document of kind.
func (s *Store) Save(ctx context.Context, kind domain.Collection, doc []byte) error {
	_, err := s.db.ExecContext(ctx, saveQuery, string(kind), repository.SchemaVersion, doc, s.now().UTC())
	if err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
