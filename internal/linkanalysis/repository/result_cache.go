// Package repository caches computed ranking results in Redis. The
// engines stay pure; a cache hit only short-circuits recomputation of a
// deterministic function, so a disabled cache changes latency, never
// responses.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	pagerankKeyPrefix = "rank:pagerank:" // rank:pagerank:{network}:{params}
	hitsKeyPrefix     = "rank:hits:"     // rank:hits:{network}:{params}
	compareKeyPrefix  = "rank:compare:"  // rank:compare:{network}:{params}
)

// Envelope wraps a cached result with its identity and age.
type Envelope struct {
	ResultID   string          `json:"result_id"`
	ComputedAt time.Time       `json:"computed_at"`
	Payload    json.RawMessage `json:"payload"`
}

// ResultCache stores JSON-marshalled ranking results with a TTL.
// A nil *ResultCache is a valid no-op cache.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a cache over the given client. ttl <= 0
// disables expiry.
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, ttl: ttl}
}

// PageRankKey builds the cache key for a PageRank computation.
func PageRankKey(networkType string, damping float64, maxIter int, threshold float64) string {
	return fmt.Sprintf("%s%s:%g:%d:%g", pagerankKeyPrefix, networkType, damping, maxIter, threshold)
}

// HITSKey builds the cache key for a HITS computation.
func HITSKey(networkType string, maxIter int, threshold float64) string {
	return fmt.Sprintf("%s%s:%d:%g", hitsKeyPrefix, networkType, maxIter, threshold)
}

// CompareKey builds the cache key for a comparison run.
func CompareKey(networkType string, damping float64, maxIter int, threshold float64) string {
	return fmt.Sprintf("%s%s:%g:%d:%g", compareKeyPrefix, networkType, damping, maxIter, threshold)
}

// Get unmarshals the cached result under key into dest. The second
// return value reports whether the key was present.
func (c *ResultCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}

	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	var env Envelope
	if err := json.Unmarshal([]byte(data), &env); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	if err := json.Unmarshal(env.Payload, dest); err != nil {
		return false, fmt.Errorf("cache decode payload %s: %w", key, err)
	}
	return true, nil
}

// Set stores value under key wrapped in a fresh envelope.
func (c *ResultCache) Set(ctx context.Context, key string, value any) error {
	if c == nil || c.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	env := Envelope{
		ResultID:   uuid.New().String(),
		ComputedAt: time.Now().UTC(),
		Payload:    payload,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("cache encode envelope %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
