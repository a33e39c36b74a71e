package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"garagehub/config"
)

// CacheClient is the availability cache client. It stays nil when Redis is
// not configured or unreachable; callers treat a nil client as a cache miss.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("Redis not configured, availability caching disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: failed to connect to Redis (cache): %v; availability caching disabled", err)
		return
	}
	CacheClient = client
}

// GetCacheClient returns the cache client, which may be nil.
func GetCacheClient() *redis.Client {
	return CacheClient
}
