// Package georef serves the district and municipality lookup lists used to
// populate location pickers. Lookups resolve through an in-memory cache, a
// persistent store and finally the upstream geo API, with concurrent requests
// for the same key coalesced into a single network call. Reference data is an
// enhancement, not a blocking dependency: every failure path degrades to an
// empty list rather than an error.
package georef

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"toolshed-backend/internal/logger"
)

const (
	districtsKey          = "geo:districts:v1"
	municipalitiesKeyBase = "geo:municipalities:v1:"
)

// Options tunes the retry policy of the cache.
type Options struct {
	// Attempts is the number of tries per network call (default 3).
	Attempts int
	// BaseDelay is the first backoff delay; it doubles each attempt
	// (default 800ms).
	BaseDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.Attempts <= 0 {
		o.Attempts = 3
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = 800 * time.Millisecond
	}
	return o
}

// Cache is the memoized, deduplicated, retrying front of the geo reference
// lists. Construct one per process and share it by reference.
type Cache struct {
	client Client
	store  Store
	opts   Options

	group singleflight.Group
	mem   memMap
}

// memMap is the in-memory tier, written at most once per key per cold start.
type memMap struct {
	mu      sync.RWMutex
	entries map[string][]string
}

func (m *memMap) get(key string) ([]string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	values, ok := m.entries[key]
	return values, ok
}

func (m *memMap) set(key string, values []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string][]string)
	}
	m.entries[key] = values
}

// NewCache builds a Cache over the given upstream client and persistent
// store. A nil store disables the persistent tier.
func NewCache(client Client, store Store, opts Options) *Cache {
	return &Cache{
		client: client,
		store:  store,
		opts:   opts.withDefaults(),
	}
}

// Districts returns the district list. It never fails: when the store is
// cold and the upstream is unreachable after retries the result is an empty
// list and a warning is logged.
func (c *Cache) Districts(ctx context.Context) []string {
	return c.resolve(ctx, districtsKey, func(ctx context.Context) ([]string, error) {
		return c.client.Districts(ctx)
	})
}

// Municipalities returns the municipality list for a district. The cache key
// uses the normalized district name so whitespace and casing variants share
// one entry.
func (c *Cache) Municipalities(ctx context.Context, district string) []string {
	norm := NormalizeDistrict(district)
	if norm == "" {
		return []string{}
	}
	key := municipalitiesKeyBase + norm
	return c.resolve(ctx, key, func(ctx context.Context) ([]string, error) {
		return c.client.Municipalities(ctx, district)
	})
}

// NormalizeDistrict trims and case-folds a district name into its cache key
// form.
func NormalizeDistrict(district string) string {
	return strings.ToLower(strings.TrimSpace(district))
}

// resolve walks the tiers for one key: memory, persistent store, coalesced
// network fetch.
func (c *Cache) resolve(ctx context.Context, key string, fetch func(context.Context) ([]string, error)) []string {
	if values, ok := c.mem.get(key); ok {
		return values
	}

	// singleflight both coalesces concurrent callers onto one in-flight
	// fetch and forgets the key once the call settles, success or failure.
	result, _, _ := c.group.Do(key, func() (any, error) {
		if values, ok := c.mem.get(key); ok {
			return values, nil
		}

		if c.store != nil {
			if values, ok := c.store.Get(ctx, key); ok {
				c.mem.set(key, values)
				return values, nil
			}
		}

		values, err := c.fetchWithRetries(ctx, key, fetch)
		if err != nil {
			logger.Warn("Geo reference fetch failed, serving empty list", "key", key, "error", err)
			return []string{}, nil
		}
		if len(values) == 0 {
			logger.Warn("Geo reference fetch returned no data", "key", key)
			return []string{}, nil
		}

		c.mem.set(key, values)
		if c.store != nil {
			c.store.Set(ctx, key, values)
		}
		return values, nil
	})

	return result.([]string)
}

// fetchWithRetries calls fetch up to opts.Attempts times with exponential
// backoff, honoring context cancellation between attempts.
func (c *Cache) fetchWithRetries(ctx context.Context, key string, fetch func(context.Context) ([]string, error)) ([]string, error) {
	var lastErr error
	delay := c.opts.BaseDelay

	for attempt := 1; attempt <= c.opts.Attempts; attempt++ {
		values, err := fetch(ctx)
		if err == nil {
			return values, nil
		}
		lastErr = err
		logger.Debug("Geo reference fetch attempt failed", "key", key, "attempt", attempt, "error", err)

		if attempt == c.opts.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return nil, lastErr
}
