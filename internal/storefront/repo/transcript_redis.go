package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/model"
	logx "github.com/somascents/storefront/pkg/logger"
)

// RedisTranscriptRepository keeps each transcript as a Redis list of JSON
// messages holding at most maxMessages entries, oldest first.
type RedisTranscriptRepository struct {
	rdb         redis.Cmdable
	prefix      string
	ttl         time.Duration
	maxMessages int
}

// NewRedisTranscriptRepository stores transcripts under prefix. A
// maxMessages of zero keeps every message; a zero ttl never expires.
func NewRedisTranscriptRepository(rdb redis.Cmdable, prefix string, ttl time.Duration, maxMessages int) *RedisTranscriptRepository {
	return &RedisTranscriptRepository{rdb: rdb, prefix: prefix, ttl: ttl, maxMessages: maxMessages}
}

func (r *RedisTranscriptRepository) transcriptKey(conversationID string) string {
	return fmt.Sprintf("%sassistant:%s:messages", r.prefix, conversationID)
}

// Append pushes messages, drops everything older than the last maxMessages
// and refreshes the TTL in one MULTI/EXEC block.
func (r *RedisTranscriptRepository) Append(ctx context.Context, conversationID string, messages ...*schema.Message) error {
	rows := make([]any, 0, len(messages))
	for _, m := range messages {
		if m == nil {
			continue
		}
		b, err := json.Marshal(m)
		if err != nil {
			logx.Error().Err(err).Str("conversationID", conversationID).Msg("failed to marshal message")
			return fmt.Errorf("marshal message: %w", err)
		}
		rows = append(rows, b)
	}
	if len(rows) == 0 {
		return nil
	}

	key := r.transcriptKey(conversationID)
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, rows...)
		if r.maxMessages > 0 {
			pipe.LTrim(ctx, key, int64(-r.maxMessages), -1)
		}
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		logx.Error().Err(err).Str("key", key).Int("messages", len(rows)).Msg("failed to append transcript")
		return errx.WrapRedis(err)
	}
	return nil
}

// Load returns the stored messages. A missing key is an empty transcript.
func (r *RedisTranscriptRepository) Load(ctx context.Context, conversationID string) (*model.Transcript, error) {
	key := r.transcriptKey(conversationID)

	rows, err := r.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to load transcript from redis")
		return nil, errx.WrapRedis(err)
	}

	msgs := make([]*schema.Message, 0, len(rows))
	for i, s := range rows {
		var m schema.Message
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			// Skip the entry rather than lose the whole conversation.
			logx.Warn().Err(err).Str("key", key).Int("index", i).Msg("dropping unreadable transcript entry")
			continue
		}
		msgs = append(msgs, &m)
	}
	return &model.Transcript{ConversationID: conversationID, Messages: msgs}, nil
}

func (r *RedisTranscriptRepository) Clear(ctx context.Context, conversationID string) error {
	key := r.transcriptKey(conversationID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete transcript from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.TranscriptRepository = (*RedisTranscriptRepository)(nil)
