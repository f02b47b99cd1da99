package repo

import (
	"context"
	"database/sql"
	"errors"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/model"
	logx "github.com/somascents/storefront/pkg/logger"
)

const createSnapshotsTable = `CREATE TABLE IF NOT EXISTS storefront_snapshots (
	key        TEXT PRIMARY KEY,
	data       BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresSnapshotStore keeps one row per snapshot key.
type PostgresSnapshotStore struct {
	db *sql.DB
}

// NewPostgresSnapshotStore ensures the snapshots table exists.
func NewPostgresSnapshotStore(ctx context.Context, db *sql.DB) (*PostgresSnapshotStore, error) {
	if _, err := db.ExecContext(ctx, createSnapshotsTable); err != nil {
		logx.Error().Err(err).Msg("failed to create snapshots table")
		return nil, errx.WrapPostgres(err)
	}
	return &PostgresSnapshotStore{db: db}, nil
}

func (p *PostgresSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := p.db.QueryRowContext(ctx, `SELECT data FROM storefront_snapshots WHERE key = $1`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load snapshot from postgres")
		return nil, false, errx.WrapPostgres(err)
	}
	return data, true, nil
}

func (p *PostgresSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := p.db.ExecContext(ctx, `INSERT INTO storefront_snapshots (key, data, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`, key, data)
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save snapshot to postgres")
		return errx.WrapPostgres(err)
	}
	return nil
}

var _ model.SnapshotStore = (*PostgresSnapshotStore)(nil)
