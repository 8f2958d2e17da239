package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session data in Redis so carts and order history
// survive restarts and are shared across instances.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore builds a RedisStore from config.
func NewRedisStore(cfg *config.RedisConfig) *RedisStore {
	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", addr, port),
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		prefix: cfg.Prefix,
	}
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// GetJSON loads a JSON value.
func (s *RedisStore) GetJSON(ctx context.Context, sessionID, key string, dest interface{}) (bool, error) {
	val, err := s.client.Get(ctx, buildKey(s.prefix, sessionID, key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON writes a JSON value.
func (s *RedisStore) SetJSON(ctx context.Context, sessionID, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, buildKey(s.prefix, sessionID, key), payload, ttl).Err()
}

// Del removes a key.
func (s *RedisStore) Del(ctx context.Context, sessionID, key string) error {
	return s.client.Del(ctx, buildKey(s.prefix, sessionID, key)).Err()
}
