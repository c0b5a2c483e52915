package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache provides a generic caching implementation with TTL support using Redis
type RedisCache struct {
	client *redis.Client
	config *RedisConfig
}

// RedisConfig holds configuration for the Redis cache
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
}

// DefaultRedisConfig returns a default Redis configuration
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:         "localhost:6379",
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	}
}

// NewRedisCache creates a new RedisCache instance
func NewRedisCache(config *RedisConfig) (*RedisCache, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,
		MaxRetries:   config.MaxRetries,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		PoolTimeout:  config.PoolTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisCache{
		client: client,
		config: config,
	}

	slog.Info("Redis cache initialized",
		slog.String("addr", config.Addr),
		slog.Int("db", config.DB),
		slog.Int("pool_size", config.PoolSize))

	return cache, nil
}

var _ Cache = (*RedisCache)(nil)

// Get retrieves a value from the cache
func (c *RedisCache) Get(ctx context.Context, key string) (any, bool) {
	result, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false
		}
		slog.Error("failed to get value from Redis cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}

	var value any
	if err := json.Unmarshal([]byte(result), &value); err != nil {
		return result, true
	}

	return value, true
}

// Set stores a value in the cache with TTL
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Error("failed to marshal value for Redis cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		slog.Error("failed to set value in Redis cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false
	}

	return true
}

// Delete removes a value from the cache
func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		slog.Error("failed to delete value from Redis cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

// GetOrSet retrieves a value from the cache, or sets it if not found
func (c *RedisCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err := loader()
	if err != nil {
		return nil, err
	}

	c.Set(ctx, key, value, ttl)
	return value, nil
}

// Ping tests the Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
