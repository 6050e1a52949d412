// File: services/session/redis.go
package session

import (
	"context"
	"encoding/json"
	"time"

	"paguro/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "chat:sess:"

// RedisStore stores each session's result set as a single JSON value
// with a TTL, so expiry check and read are one atomic GET and Put is
// one atomic SET.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, weeks []models.AvailabilityWeek) error {
	b, err := json.Marshal(weeks)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) ([]models.AvailabilityWeek, error) {
	data, err := s.client.Get(ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var weeks []models.AvailabilityWeek
	if err := json.Unmarshal([]byte(data), &weeks); err != nil {
		return nil, err
	}
	return weeks, nil
}

func (s *RedisStore) Resolve(ctx context.Context, sessionID string, index int) (*models.AvailabilityWeek, error) {
	weeks, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return resolveIndex(weeks, index)
}

// resolveIndex applies the shared index validation for all Store
// implementations. The index space is 1-based and contiguous.
func resolveIndex(weeks []models.AvailabilityWeek, index int) (*models.AvailabilityWeek, error) {
	if len(weeks) == 0 {
		return nil, ErrNoPriorResults
	}
	if index < 1 || index > len(weeks) {
		return nil, &IndexOutOfRangeError{Index: index, Max: len(weeks)}
	}
	week := weeks[index-1]
	return &week, nil
}
