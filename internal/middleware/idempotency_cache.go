package middleware

import (
	"sync"
	"time"
)

// pruneEvery bounds how often Set scans the cache for expired entries.
const pruneEvery = 64

// idempotencyCache is an in-memory TTL store of replayable responses.
// Expired entries are pruned opportunistically on writes, so the cache
// needs no background goroutine.
type idempotencyCache struct {
	mu     sync.RWMutex
	items  map[string]*cachedResponse
	ttl    time.Duration
	writes int
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	return &idempotencyCache{
		items: make(map[string]*cachedResponse),
		ttl:   ttl,
	}
}

// Get returns the stored response for a fingerprint, if present and fresh.
func (c *idempotencyCache) Get(fingerprint string) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[fingerprint]
	if !ok || time.Since(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set stores a response for a fingerprint, stamping it with the current time.
func (c *idempotencyCache) Set(fingerprint string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.Timestamp = time.Now()
	c.items[fingerprint] = resp

	c.writes++
	if c.writes%pruneEvery == 0 {
		c.pruneLocked()
	}
}

// pruneLocked drops expired entries. Callers must hold the write lock.
func (c *idempotencyCache) pruneLocked() {
	now := time.Now()
	for fingerprint, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, fingerprint)
		}
	}
}
