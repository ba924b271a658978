package repo

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const tokenSetKey = "notify:tokens"

// RedisTokenRepository stores recipient tokens in a Redis set so that
// registrations survive restarts and are shared across replicas.
type RedisTokenRepository struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisTokenRepository(rdb *redis.Client, ctx context.Context) *RedisTokenRepository {
	return &RedisTokenRepository{rdb: rdb, ctx: ctx}
}

func (r *RedisTokenRepository) Register(token string) error {
	return r.rdb.SAdd(r.ctx, tokenSetKey, token).Err()
}

func (r *RedisTokenRepository) Remove(token string) error {
	return r.rdb.SRem(r.ctx, tokenSetKey, token).Err()
}

func (r *RedisTokenRepository) All() ([]string, error) {
	return r.rdb.SMembers(r.ctx, tokenSetKey).Result()
}
