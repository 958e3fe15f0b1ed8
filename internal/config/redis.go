package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the knowledge cache. The startup ping is bounded
// so a missing Redis fails fast instead of stalling boot; callers treat a
// nil client as "caching disabled".
func NewRedisClient(cfg *Config) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
