package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/model"
	logx "github.com/somascents/storefront/pkg/logger"
)

type RedisSnapshotStore struct {
	rdb    redis.Cmdable
	prefix string
}

func NewRedisSnapshotStore(rdb redis.Cmdable, prefix string) *RedisSnapshotStore {
	return &RedisSnapshotStore{rdb: rdb, prefix: prefix}
}

func (r *RedisSnapshotStore) snapshotKey(key string) string {
	return fmt.Sprintf("%ssnapshot:%s", r.prefix, key)
}

func (r *RedisSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	k := r.snapshotKey(key)
	b, err := r.rdb.Get(ctx, k).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		logx.Error().Err(err).Str("key", k).Msg("failed to load snapshot from redis")
		return nil, false, errx.WrapRedis(err)
	}
	return b, true, nil
}

func (r *RedisSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	k := r.snapshotKey(key)
	// snapshots live for the client session, so no expiry
	if err := r.rdb.Set(ctx, k, data, 0).Err(); err != nil {
		logx.Error().Err(err).Str("key", k).Msg("failed to save snapshot to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.SnapshotStore = (*RedisSnapshotStore)(nil)
