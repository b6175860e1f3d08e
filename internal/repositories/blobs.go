package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

// BlobStore is the opaque persistence contract: get and set one named blob.
// A missing key is not an error; Get returns nil bytes for it.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// PostgresBlobStore keeps each named blob in its own row.
type PostgresBlobStore struct {
	db postgres.DB
}

func NewPostgresBlobStore(db postgres.DB) *PostgresBlobStore {
	return &PostgresBlobStore{db: db}
}

func (store *PostgresBlobStore) Get(
	ctx context.Context,
	key string,
) ([]byte, error) {
	query := `
		SELECT value
		FROM calendar.blobs
		WHERE key = $1
	`

	var value []byte
	err := store.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return value, nil
}

func (store *PostgresBlobStore) Set(
	ctx context.Context,
	key string,
	value []byte,
) error {
	query := `
		INSERT INTO calendar.blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET value = $2, updated_at = now()
	`

	_, err := store.db.Exec(ctx, query, key, value)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}
