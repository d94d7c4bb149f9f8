package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 30 * 24 * time.Hour

type RedisStateStore struct {
	client *redis.Client
}

func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{client: client}
}

func (s *RedisStateStore) Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, stateKey(sessionID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(raw, dest)
}

// Set refreshes the session TTL on every write.
func (s *RedisStateStore) Set(ctx context.Context, sessionID, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, stateKey(sessionID, key), raw, sessionTTL).Err()
}

func (s *RedisStateStore) Delete(ctx context.Context, sessionID, key string) error {
	return s.client.Del(ctx, stateKey(sessionID, key)).Err()
}
