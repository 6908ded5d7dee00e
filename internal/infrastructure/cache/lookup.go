package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const lookupPrefix = "lostfound:lookup:"

// LookupCache stores small JSON-encoded lookup lists (users, locations).
// Entries expire after ttl and are dropped explicitly on directory writes.
type LookupCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLookupCache(rdb *redis.Client, ttl time.Duration) *LookupCache {
	return &LookupCache{rdb: rdb, ttl: ttl}
}

// Get decodes the entry for key into dst. A miss is (false, nil).
func (c *LookupCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, lookupPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// unreadable entry: drop it and treat as a miss
		_ = c.rdb.Del(ctx, lookupPrefix+key).Err()
		return false, nil
	}
	return true, nil
}

func (c *LookupCache) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, lookupPrefix+key, raw, c.ttl).Err()
}

func (c *LookupCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = lookupPrefix + k
	}
	return c.rdb.Del(ctx, full...).Err()
}
