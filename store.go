package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/somascents/storefront/internal/storefront/model"
	"github.com/somascents/storefront/internal/storefront/repo"
	logx "github.com/somascents/storefront/pkg/logger"
)

// backend is the storage the storefront runs on.
type backend struct {
	snapshots   model.SnapshotStore
	transcripts model.TranscriptRepository
	close       func()
}

// openBackend dials the store named by STORAGE_BACKEND. Assistant
// transcripts live in Redis when it is the backend and in memory otherwise.
func openBackend(ctx context.Context, cfg AppConfig) (*backend, error) {
	store, closeFn, rdb, err := openSnapshotStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	b := &backend{snapshots: store, close: closeFn}
	if rdb != nil {
		b.transcripts = repo.NewRedisTranscriptRepository(rdb, cfg.Redis.KeyPrefix, cfg.Assistant.TranscriptTTL, cfg.Assistant.HistoryTurns)
	} else {
		b.transcripts = repo.NewMemoryTranscriptRepository(cfg.Assistant.HistoryTurns)
	}
	return b, nil
}

// openSnapshotStore returns the snapshot store, its close func (always
// non-nil) and the Redis client when Redis was selected.
func openSnapshotStore(ctx context.Context, cfg AppConfig) (model.SnapshotStore, func(), *redis.Client, error) {
	noop := func() {}

	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Backend)) {
	case "memory":
		return repo.NewMemoryStore(), noop, nil, nil

	case "", "file":
		store, err := repo.NewOSFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, noop, nil, err
		}
		return store, noop, nil, nil

	case "redis":
		rdb, err := cfg.Redis.New()
		if err != nil {
			return nil, noop, nil, fmt.Errorf("failed to initialise Redis client: %w", err)
		}
		logx.Info().Msg("Connected to Redis successfully")
		return repo.NewRedisSnapshotStore(rdb, cfg.Redis.KeyPrefix), func() { _ = rdb.Close() }, rdb, nil

	case "postgres":
		db, err := cfg.Postgres.New()
		if err != nil {
			return nil, noop, nil, fmt.Errorf("failed to initialise Postgres: %w", err)
		}
		store, err := repo.NewPostgresSnapshotStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, noop, nil, err
		}
		logx.Info().Msg("Connected to Postgres successfully")
		return store, func() { _ = db.Close() }, nil, nil

	case "mongo":
		client, db, err := cfg.Mongo.New()
		if err != nil {
			return nil, noop, nil, fmt.Errorf("failed to initialise MongoDB: %w", err)
		}
		logx.Info().Str("database", db.Name()).Msg("Connected to MongoDB successfully")
		return repo.NewMongoSnapshotStore(db), func() { _ = client.Disconnect(context.Background()) }, nil, nil

	default:
		return nil, noop, nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.Storage.Backend)
	}
}
