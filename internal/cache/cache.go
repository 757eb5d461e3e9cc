// Package cache is an in-process memoization map with a time-to-live. Keys
// are built by the caller from an operation identifier plus its arguments, so
// one cache can front several upstream calls.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// Cache maps string keys to values with a fixed TTL. Safe for concurrent use.
type Cache[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[V]
	now     func() time.Time
}

func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// GetOrCompute returns the cached value for key if one was inserted within
// the TTL, otherwise calls compute and caches its result. Errors are not
// cached. Compute runs outside the lock, so concurrent misses on the same key
// may compute more than once; the upstreams here are idempotent reads, so a
// duplicate fetch is harmless.
func (c *Cache[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Sub(e.insertedAt) < c.ttl {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	value, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, insertedAt: c.now()}
	// Expired entries for other keys are dropped opportunistically so the map
	// does not grow without bound across distinct query points.
	for k, e := range c.entries {
		if c.now().Sub(e.insertedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()

	return value, nil
}

// Len reports the number of entries currently held, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
