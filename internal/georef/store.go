package georef

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"

	"toolshed-backend/internal/logger"
)

// Store is the persistent tier of the reference-data cache. Entries survive
// process restarts so a warm store skips the network entirely.
type Store interface {
	// Get returns the stored list for key and whether it was present.
	Get(ctx context.Context, key string) ([]string, bool)
	// Set stores the list under key. Failures are logged, not returned:
	// persistence is an optimization, never a blocking dependency.
	Set(ctx context.Context, key string, values []string)
}

// redisStore persists reference lists as JSON strings in Redis.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a Redis client as a Store.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]string, bool) {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Warn("Failed to read geo cache entry", "key", key, "error", err)
		return nil, false
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		// Corrupt entry: delete it and treat as a miss.
		logger.Warn("Corrupt geo cache entry, dropping", "key", key, "error", err)
		s.client.Del(ctx, key)
		return nil, false
	}
	if len(values) == 0 {
		return nil, false
	}
	return values, true
}

func (s *redisStore) Set(ctx context.Context, key string, values []string) {
	raw, err := json.Marshal(values)
	if err != nil {
		logger.Warn("Failed to encode geo cache entry", "key", key, "error", err)
		return
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		logger.Warn("Failed to persist geo cache entry", "key", key, "error", err)
	}
}

// memoryStore is a process-local Store for tests and deployments without
// Redis.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string][]string
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string][]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values, ok := s.entries[key]
	if !ok || len(values) == 0 {
		return nil, false
	}
	return values, true
}

func (s *memoryStore) Set(_ context.Context, key string, values []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = values
}
