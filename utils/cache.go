// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tidybook/config"

	"github.com/go-redis/redis/v8"
)

var (
	// QuoteCacheClient stores in-flight quote wizard sessions.
	QuoteCacheClient *redis.Client
	// TermsCacheClient stores terms-of-service acceptance records.
	TermsCacheClient *redis.Client
)

// InitQuoteCache initializes the Redis client backing quote sessions.
func InitQuoteCache() {
	QuoteCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQuoteDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := QuoteCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Quote Cache): %v", err)
	}
}

// GetQuoteCacheClient returns the quote-session cache client.
func GetQuoteCacheClient() *redis.Client {
	if QuoteCacheClient == nil {
		InitQuoteCache()
	}
	return QuoteCacheClient
}

// InitTermsCache initializes the Redis client backing terms acceptance.
func InitTermsCache() {
	TermsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTermsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := TermsCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Terms Cache): %v", err)
	}
}

// GetTermsCacheClient returns the terms-acceptance cache client.
func GetTermsCacheClient() *redis.Client {
	if TermsCacheClient == nil {
		InitTermsCache()
	}
	return TermsCacheClient
}
