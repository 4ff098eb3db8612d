// Package rediscache provides a thin TTL cache on top of redis, used by
// the HTTP layer to cache read responses.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// connectTimeout bounds the initial PING so a down redis fails fast at
// startup instead of hanging the boot sequence.
const connectTimeout = 5 * time.Second

// Cache wraps a redis client with the small surface the API layer needs.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// New connects to redis at the given URL (redis://host:port/db form) and
// verifies the connection with a PING before returning.
func New(url string, logger *slog.Logger) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &Cache{
		client: client,
		logger: logger.With(slog.String("component", "rediscache")),
	}, nil
}

// Get returns the value stored under key, or ErrCacheMiss when absent.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key for ttl.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

// Invalidate removes every key matching pattern (redis glob syntax).
// Keys are discovered with SCAN rather than KEYS so invalidation never
// blocks the server on large keyspaces.
func (c *Cache) Invalidate(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan %q: %w", pattern, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}

	c.logger.Debug("cache invalidated",
		slog.String("pattern", pattern),
		slog.Int("keys", len(keys)))
	return nil
}

// Close releases the underlying redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
