package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var RedisClient *redis.Client

// InitRedis returns nil without error when Redis is optional and unreachable;
// callers then run without the content cache.
func InitRedis(cfg *Config, log *zap.Logger) (*redis.Client, error) {
	var opt *redis.Options
	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		if cfg.StateBackend == BackendRedis {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}
		log.Warn("Redis connection failed, running without cache", zap.Error(err))
		return nil, nil
	}

	log.Info("Redis connected", zap.String("addr", opt.Addr))
	RedisClient = client
	return client, nil
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
