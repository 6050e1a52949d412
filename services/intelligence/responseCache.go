// File: services/intelligence/responseCache.go
package ai

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"time"

	"github.com/go-redis/redis/v8"
)

const responsePrefix = "ai:resp:"

// ResponseCache memoizes generated replies by prompt hash so repeated
// generic questions do not hit the generator again.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ResponseCache{client: client, ttl: ttl}
}

func cacheKey(prompt string) string {
	sum := md5.Sum([]byte(prompt))
	return responsePrefix + hex.EncodeToString(sum[:])[:8]
}

// Get returns the cached reply for a prompt, if any. Lookup failures
// are treated as misses.
func (c *ResponseCache) Get(ctx context.Context, prompt string) (string, bool) {
	data, err := c.client.Get(ctx, cacheKey(prompt)).Result()
	if err != nil {
		return "", false
	}
	return data, true
}

func (c *ResponseCache) Set(ctx context.Context, prompt, reply string) error {
	return c.client.Set(ctx, cacheKey(prompt), reply, c.ttl).Err()
}
