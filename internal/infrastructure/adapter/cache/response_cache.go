package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces cached idempotent responses in Redis
const keyPrefix = "idem:"

// Config holds Redis connection settings
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// ResponseCache is a read-through cache of captured idempotent responses.
// It is a fast path only: the database idempotency row stays the source of
// truth, and every cache failure degrades to a database lookup.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
	logger coreport.Logger
}

// NewResponseCache connects to Redis and verifies the connection
func NewResponseCache(cfg Config, logger coreport.Logger) (*ResponseCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &ResponseCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// NewResponseCacheWithClient wraps an existing client, used in tests
func NewResponseCacheWithClient(client *redis.Client, ttl time.Duration, logger coreport.Logger) *ResponseCache {
	return &ResponseCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached response for a key, or nil on a miss. Errors are
// logged and reported as misses so Redis outages never block requests.
func (c *ResponseCache) Get(ctx context.Context, key string) json.RawMessage {
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Response cache read failed", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil
	}
	return payload
}

// Set stores a captured response under the key with the configured TTL.
// Responses are only cached once terminal, so staleness is impossible and
// expiry is purely a memory bound.
func (c *ResponseCache) Set(ctx context.Context, key string, response json.RawMessage) {
	if err := c.client.Set(ctx, keyPrefix+key, []byte(response), c.ttl).Err(); err != nil {
		c.logger.Warn("Response cache write failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// Close releases the Redis connection
func (c *ResponseCache) Close() error {
	return c.client.Close()
}
