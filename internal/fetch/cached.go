// Package fetch - cached.go provides cache-backed article fetching so repeat
// cycles do not re-download pages the extractor already saw.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPageCacheTTL keeps fetched article HTML around for a day. Job
// notification pages rarely change once published.
const DefaultPageCacheTTL = 24 * time.Hour

// Cache is the storage behind a CachedFetcher.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// CachedFetcher wraps URL fetching with a cache keyed by URL.
type CachedFetcher struct {
	cache   Cache
	options *Options
	ttl     time.Duration
}

// NewCachedFetcher builds a fetcher over the given cache. A nil cache
// degrades to plain fetching.
func NewCachedFetcher(cache Cache, opts *Options, ttl time.Duration) *CachedFetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if ttl <= 0 {
		ttl = DefaultPageCacheTTL
	}
	return &CachedFetcher{cache: cache, options: opts, ttl: ttl}
}

// Fetch returns the page HTML, from cache when fresh. Cache errors fall
// through to a live fetch; a live fetch failure is the only error returned.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*Result, bool, error) {
	if f.cache != nil {
		html, hit, err := f.cache.Get(ctx, urlStr)
		if err == nil && hit {
			return &Result{URL: urlStr, HTML: html, StatusCode: 200}, true, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return result, false, err
	}

	if f.cache != nil {
		// A failed write just means the next cycle fetches again.
		_ = f.cache.Set(ctx, urlStr, result.HTML, f.ttl)
	}
	return result, false, nil
}

// RedisCache backs Cache with Redis strings under a common prefix.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache wraps an existing Redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, prefix: "jobwire:page:"}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get: %w", err)
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
