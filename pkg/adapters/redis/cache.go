package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no result is cached for a machine/operation pair.
var ErrCacheMiss = errors.New("analysis result not cached")

// Cache stores marshalled analysis results in Redis, keyed by machine
// identifier and operation. Batch tooling re-analyzes large machine sets;
// results are pure functions of the definition, so caching them is safe as
// long as the definition key changes when the definition does.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the cache.
type Option func(*Cache)

// WithTTL sets the expiry for cached results (default: no expiry).
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix namespaces the cache keys (default "espalier:").
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// NewFromClient creates a cache on an existing Redis client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: "espalier:",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Put stores one analysis result as JSON.
func (c *Cache) Put(ctx context.Context, machineID, operation string, result any) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal %s result: %w", operation, err)
	}
	if err := c.client.Set(ctx, c.key(machineID, operation), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis error storing %s result: %w", operation, err)
	}
	return nil
}

// Get loads a cached result into out. Returns ErrCacheMiss when absent.
func (c *Cache) Get(ctx context.Context, machineID, operation string, out any) error {
	data, err := c.client.Get(ctx, c.key(machineID, operation)).Bytes()
	if errors.Is(err, backend.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis error loading %s result: %w", operation, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal cached %s result: %w", operation, err)
	}
	return nil
}

// Invalidate drops all cached results for a machine.
func (c *Cache) Invalidate(ctx context.Context, machineID string) error {
	iter := c.client.Scan(ctx, 0, c.prefix+machineID+":*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis error scanning cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis error invalidating cache: %w", err)
	}
	return nil
}

func (c *Cache) key(machineID, operation string) string {
	return c.prefix + machineID + ":" + operation
}
