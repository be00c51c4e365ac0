package database

import (
	"context"
	"fmt"
	"time"

	"github.com/igorshiota/booking-app/config"

	"github.com/go-redis/redis/v8"
)

// NewSessionCache opens and verifies the Redis client used for booking
// session storage.
func NewSessionCache(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (sessions): %w", err)
	}
	return client, nil
}
