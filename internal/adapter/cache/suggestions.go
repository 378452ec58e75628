// Package cache stores search suggestions in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

const defaultKeyPrefix = "laborcrm"

// Suggestions is a TTL cache of suggestion lists keyed by query and limit.
type Suggestions struct {
	client    redis.Cmdable
	keyPrefix string
	ttl       time.Duration
}

// Option configures a Suggestions cache.
type Option func(*Suggestions)

// WithKeyPrefix overrides the key namespace.
func WithKeyPrefix(prefix string) Option {
	return func(c *Suggestions) {
		c.keyPrefix = prefix
	}
}

// NewSuggestions wraps an existing client. A non-positive ttl disables
// expiry.
func NewSuggestions(client redis.Cmdable, ttl time.Duration, opts ...Option) *Suggestions {
	c := &Suggestions{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		ttl:       ttl,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClient parses a redis:// URL and verifies the server answers PING.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (c *Suggestions) key(k string) string {
	if c.keyPrefix == "" {
		return k
	}
	return c.keyPrefix + ":" + k
}

// Get returns the cached list. A miss is reported as ok=false with a nil error.
func (c *Suggestions) Get(ctx context.Context, key string) ([]domain.Suggestion, bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var items []domain.Suggestion
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return items, true, nil
}

// Set stores the list under key with the configured TTL.
func (c *Suggestions) Set(ctx context.Context, key string, items []domain.Suggestion) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.key(key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable. Used by the health check.
func (c *Suggestions) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
