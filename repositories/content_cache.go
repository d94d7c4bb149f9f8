package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const contentKeyPrefix = "content:"

// ContentCache keeps the raw bytes of data files in Redis so several
// instances share one read of the data directory.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewContentCache(client *redis.Client, ttl time.Duration) *ContentCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ContentCache{client: client, ttl: ttl}
}

func (c *ContentCache) Get(ctx context.Context, file string) ([]byte, bool) {
	raw, err := c.client.Get(ctx, contentKeyPrefix+file).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (c *ContentCache) Set(ctx context.Context, file string, raw []byte) error {
	return c.client.Set(ctx, contentKeyPrefix+file, raw, c.ttl).Err()
}

func (c *ContentCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, contentKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
