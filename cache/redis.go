package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// IdempotencyStore guards retried requests: the first caller to claim a key wins,
// later callers with the same key are rejected as duplicates.
type IdempotencyStore interface {
	SetIdempotency(ctx context.Context, key string) (bool, error)
	GenerateKey(operation, actor, key string) string
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to redis at addr. Keys expire after ttl so a retry long
// after the original request is treated as a new request, not a duplicate.
func NewRedisStore(addr string, ttl time.Duration) IdempotencyStore {
	return &redisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (r *redisStore) SetIdempotency(ctx context.Context, key string) (bool, error) {
	return r.client.SetNX(ctx, key, 1, r.ttl).Result()
}

func (r *redisStore) GenerateKey(operation, actor, key string) string {
	return fmt.Sprintf("%s:%s:%s", operation, actor, key)
}
