package delivery

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wsawebmaster/delivery/internal/metrics"
)

// CacheStats reports address cache activity.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// cachedLookup is a directory answer worth remembering: an address or a definite
// "not found". Transport failures are never cached.
type cachedLookup struct {
	addr     Address
	notFound bool
}

type cacheEntry struct {
	key       string
	value     cachedLookup
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// AddressCache is a thread-safe LRU cache of directory answers with TTL expiration.
type AddressCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry
	head      *cacheEntry
	tail      *cacheEntry
	hits      int64
	misses    int64
	evictions int64
	now       func() time.Time
}

// NewAddressCache creates a cache holding at most capacity answers for ttl each.
func NewAddressCache(capacity int, ttl time.Duration) *AddressCache {
	if capacity < 1 {
		capacity = 1
	}
	return &AddressCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		now:      time.Now,
	}
}

func (c *AddressCache) get(key string) (cachedLookup, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return cachedLookup{}, false
	}
	if c.now().After(entry.expiresAt) {
		c.removeEntry(entry)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return cachedLookup{}, false
	}

	c.moveToFront(entry)
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

func (c *AddressCache) set(key string, value cachedLookup) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry{key: key, value: value, expiresAt: expiresAt}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeEntry(c.tail)
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// Purge removes expired entries and returns how many were dropped.
func (c *AddressCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
			n++
		}
	}
	return n
}

// Stats returns current cache statistics.
func (c *AddressCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

func (c *AddressCache) removeEntry(entry *cacheEntry) {
	delete(c.items, entry.key)
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev, entry.next = nil, nil
}

func (c *AddressCache) moveToFront(entry *cacheEntry) {
	if entry == c.head {
		return
	}
	if entry.prev != nil {
		entry.prev.next = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	c.addToFront(entry)
}

func (c *AddressCache) addToFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

// CachedDirectory answers repeated lookups from an AddressCache.
type CachedDirectory struct {
	next  Directory
	cache *AddressCache
}

// NewCachedDirectory wraps next with cache.
func NewCachedDirectory(next Directory, cache *AddressCache) *CachedDirectory {
	return &CachedDirectory{next: next, cache: cache}
}

// Lookup returns a cached answer or asks the wrapped directory.
func (d *CachedDirectory) Lookup(ctx context.Context, code string) (*Address, error) {
	if hit, ok := d.cache.get(code); ok {
		if hit.notFound {
			return nil, ErrPostalCodeNotFound
		}
		addr := hit.addr
		return &addr, nil
	}

	addr, err := d.next.Lookup(ctx, code)
	switch {
	case err == nil && addr != nil:
		d.cache.set(code, cachedLookup{addr: *addr})
	case errors.Is(err, ErrPostalCodeNotFound):
		d.cache.set(code, cachedLookup{notFound: true})
	}
	return addr, err
}
