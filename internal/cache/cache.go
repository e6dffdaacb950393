// Package cache keeps short-lived copies of backend lists that many screens
// read (menu, categories). A mutation drops the affected keys so the next
// read refetches.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	MenuItemsKey         = "dashboard:menu-items"
	CategoriesKey        = "dashboard:categories"
	BanquetCategoriesKey = "dashboard:banquet-categories"
	TablesKey            = "dashboard:tables"
	TTLShort             = 1 * time.Minute
	TTLMedium            = 10 * time.Minute
)

type ListCache struct {
	redis *redis.Client
}

// New returns a cache backed by rdb. A nil client gives a cache that never
// hits, which keeps callers free of nil checks.
func New(rdb *redis.Client) *ListCache {
	return &ListCache{redis: rdb}
}

func (c *ListCache) enabled() bool { return c != nil && c.redis != nil }

// Fetch returns the cached value under key, or calls load and caches what it
// returns. Cache failures are logged and fall through to load.
func Fetch[T any](ctx context.Context, c *ListCache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if c.enabled() {
		raw, err := c.redis.Get(ctx, key).Bytes()
		if err == nil {
			var cached T
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("cache: get %s: %v", key, err)
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if c.enabled() {
		if raw, err := json.Marshal(value); err == nil {
			if err := c.redis.Set(ctx, key, raw, ttl).Err(); err != nil {
				log.Printf("cache: set %s: %v", key, err)
			}
		}
	}
	return value, nil
}

func (c *ListCache) Invalidate(ctx context.Context, keys ...string) {
	if !c.enabled() || len(keys) == 0 {
		return
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache: invalidate %v: %v", keys, err)
	}
}
