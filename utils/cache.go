// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"paguro/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient is the dedicated client for conversation sessions.
	SessionCacheClient *redis.Client
	// ResponseCacheClient is the dedicated client for generated-response caching.
	ResponseCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for session storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for session storage.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitResponseCache initializes the Redis client for generated-response caching.
func InitResponseCache() {
	ResponseCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisResponseDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ResponseCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Response Cache): %v", err)
	}
}

// GetResponseCacheClient returns the Redis client for generated-response caching.
func GetResponseCacheClient() *redis.Client {
	if ResponseCacheClient == nil {
		InitResponseCache()
	}
	return ResponseCacheClient
}
