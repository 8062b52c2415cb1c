// Package pgstore persists collection documents in PostgreSQL as JSONB rows.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/repository"
)

const (
	loadQuery = `SELECT payload FROM collections WHERE kind = $1`
	saveQuery = `INSERT INTO collections (kind, version, payload, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (kind) DO UPDATE SET
	version = EXCLUDED.version,
	payload = EXCLUDED.payload,
	updated_at = EXCLUDED.updated_at`
)

// Store implements repository.Backend using PostgreSQL. The collections
// table is created by the migrations in migrations/.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a new Store.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Load returns the stored document of kind.
func (s *Store) Load(ctx context.Context, kind domain.Collection) ([]byte, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, loadQuery, string(kind)).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotStored
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}
	return payload, nil
}

// Save upserts the document of kind.
func (s *Store) Save(ctx context.Context, kind domain.Collection, doc []byte) error {
	if _, err := s.pool.Exec(ctx, saveQuery, string(kind), repository.SchemaVersion, doc); err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}

// Ping checks if the database connection is healthy.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
