package repo

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/fridgewatch/fridgewatch/internal/models"
)

// RedisRSLLogRepository keeps the per-item RSL history in a Redis list,
// newest first, trimmed to MaxRSLLogEntries on every append.
type RedisRSLLogRepository struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisRSLLogRepository(rdb *redis.Client, ctx context.Context) *RedisRSLLogRepository {
	return &RedisRSLLogRepository{rdb: rdb, ctx: ctx}
}

func rslLogKey(itemType string) string {
	return "rsllog:" + itemType
}

func (r *RedisRSLLogRepository) Append(itemType string, entry models.RSLLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.LPush(r.ctx, rslLogKey(itemType), data)
	pipe.LTrim(r.ctx, rslLogKey(itemType), 0, MaxRSLLogEntries-1)
	_, err = pipe.Exec(r.ctx)
	return err
}

func (r *RedisRSLLogRepository) Recent(itemType string, limit int) ([]models.RSLLogEntry, error) {
	if limit <= 0 || limit > MaxRSLLogEntries {
		limit = MaxRSLLogEntries
	}

	raw, err := r.rdb.LRange(r.ctx, rslLogKey(itemType), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]models.RSLLogEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.RSLLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
