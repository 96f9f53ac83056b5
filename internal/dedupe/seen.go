package dedupe

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SeenCache is a fast set of recently ingested source URLs. It is an
// optimization in front of the store lookups, not the source of truth.
type SeenCache interface {
	Seen(ctx context.Context, sourceURL string) (bool, error)
	Mark(ctx context.Context, sourceURL string) error
}

// seenTTL keeps cache entries alive slightly longer than the fuzzy window.
const seenTTL = Window + 24*time.Hour

// RedisSeenCache backs SeenCache with Redis keys under a common prefix.
type RedisSeenCache struct {
	client *redis.Client
	prefix string
}

// NewRedisSeenCache wraps an existing Redis client.
func NewRedisSeenCache(client *redis.Client) *RedisSeenCache {
	return &RedisSeenCache{client: client, prefix: "jobwire:seen:"}
}

func (c *RedisSeenCache) Seen(ctx context.Context, sourceURL string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+sourceURL).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

func (c *RedisSeenCache) Mark(ctx context.Context, sourceURL string) error {
	if err := c.client.Set(ctx, c.prefix+sourceURL, 1, seenTTL).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
