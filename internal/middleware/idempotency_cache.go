package middleware

import (
	"sync"
	"time"
)

// IdempotencyCache holds replayable responses and the keys currently being processed.
type IdempotencyCache struct {
	mu       sync.Mutex
	items    map[uint64]*cachedResponse
	inFlight map[uint64]struct{}
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewIdempotencyCache creates a cache whose entries live for ttl and starts its janitor.
func NewIdempotencyCache(ttl time.Duration) *IdempotencyCache {
	c := &IdempotencyCache{
		items:    make(map[uint64]*cachedResponse),
		inFlight: make(map[uint64]struct{}),
		ttl:      ttl,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	go c.janitor()
	return c
}

// Get returns the live response stored for key.
func (c *IdempotencyCache) Get(key uint64) (*cachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, ok := c.items[key]
	if !ok || c.now().Sub(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Begin claims key. It reports false if another request holds it.
func (c *IdempotencyCache) Begin(key uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inFlight[key]; busy {
		return false
	}
	c.inFlight[key] = struct{}{}
	return true
}

// Complete releases key and stores resp when it is not nil.
func (c *IdempotencyCache) Complete(key uint64, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.inFlight, key)
	if resp != nil {
		resp.Timestamp = c.now()
		c.items[key] = resp
	}
}

// Len returns the number of stored responses.
func (c *IdempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stop ends the janitor.
func (c *IdempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *IdempotencyCache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *IdempotencyCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}
