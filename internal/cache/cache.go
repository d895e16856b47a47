package cache

import (
	"context"
	"log"
	"time"

	"github.com/bellebook/salon-scheduler/internal/config"
	"github.com/go-redis/redis/v8"
)

// NewClient connects the Redis client used for reservation holds and
// fails fast when the server is unreachable.
func NewClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	return client
}
