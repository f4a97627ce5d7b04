// Package pgsql is a Postgres-backed document store: one row per key in the
// documents table, with the collection JSON held in a jsonb column. The
// schema is managed by the migrations in migrations/.
package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/eyobht/project_finance_app/internal/core/ports/repositories"
)

// PgxDocumentStore persists documents through a pgx connection pool.
type PgxDocumentStore struct {
	pool *pgxpool.Pool
}

// NewPgxDocumentStore creates a document store over the given pool.
func NewPgxDocumentStore(pool *pgxpool.Pool) *PgxDocumentStore {
	return &PgxDocumentStore{pool: pool}
}

var _ portsrepo.DocumentStore = (*PgxDocumentStore)(nil)

// Load returns the document stored under key, reporting absence when no row
// exists.
func (r *PgxDocumentStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT doc FROM documents WHERE key = $1;`

	var data []byte
	err := r.pool.QueryRow(ctx, query, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load document %q: %w", key, err)
	}
	return data, true, nil
}

// Save upserts the document under key.
func (r *PgxDocumentStore) Save(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO documents (key, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			doc = EXCLUDED.doc,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := r.pool.Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("failed to save document %q: %w", key, err)
	}
	return nil
}
