// Package ephemeral implements the in-process TTL keyed store shared by the
// draft repository and the rate limiter. Isolation between consumers is
// purely by key namespace; every entry carries its own TTL, so consumers
// with different lifetimes do not contaminate each other.
package ephemeral

import (
	"context"
	"sync"
	"time"
)

type item struct {
	value     any
	expiresAt time.Time
}

func (it item) expired(now time.Time) bool {
	return !it.expiresAt.After(now)
}

// Cache is a concurrency-safe keyed store with per-entry TTL. Expiry is
// lazy: an expired entry is treated as absent on read and physically removed
// either on that read or by the optional background janitor.
type Cache struct {
	mu    sync.Mutex
	items map[string]item
	now   func() time.Time

	janitorStop chan struct{}
	janitorOnce sync.Once
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the time source. Used by tests to control expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// NewCache returns an empty cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		items:       make(map[string]item),
		now:         time.Now,
		janitorStop: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Put stores value under key with the given TTL, replacing any previous
// entry atomically. A non-positive TTL stores nothing and deletes the key.
func (c *Cache) Put(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ttl <= 0 {
		delete(c.items, key)
		return
	}
	c.items[key] = item{value: value, expiresAt: c.now().Add(ttl)}
}

// Get returns the live value for key, or ok=false if the key is missing or
// expired. An expired entry is removed on the spot.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if it.expired(c.now()) {
		delete(c.items, key)
		return nil, false
	}
	return it.value, true
}

// Exists reports whether key holds a live value.
func (c *Cache) Exists(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Delete removes key. Deleting an absent key is not an error.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Update applies fn to the live value of key (nil if absent) under the store
// lock and writes the result back with the given TTL. It is the atomic
// read-modify-write used by the rate limiter's window counter. If fn
// returns keep=false the entry is removed instead.
func (c *Cache) Update(key string, ttl time.Duration, fn func(current any) (next any, keep bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var current any
	if it, ok := c.items[key]; ok && !it.expired(c.now()) {
		current = it.value
	}
	next, keep := fn(current)
	if !keep {
		delete(c.items, key)
		return
	}
	c.items[key] = item{value: next, expiresAt: c.now().Add(ttl)}
}

// Len returns the number of physically stored entries, including ones that
// expired but have not been collected yet.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// RunJanitor sweeps expired entries every interval until ctx is cancelled or
// Stop is called. The cache works correctly without it; the sweep only
// bounds memory held by abandoned drafts between their expiry and the next
// read.
func (c *Cache) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.janitorStop:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

// Stop terminates a running janitor. Safe to call more than once.
func (c *Cache) Stop() {
	c.janitorOnce.Do(func() { close(c.janitorStop) })
}

func (c *Cache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, it := range c.items {
		if it.expired(now) {
			delete(c.items, key)
		}
	}
}
