// Package cache provides the process-local read cache used by the catalog
// endpoints. Best effort: readers may see data up to one TTL stale, writers
// clear the whole cache after every catalog mutation.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value    any
	storedAt time.Time
}

// Cache is a TTL map safe for concurrent handlers. Constructed once at
// startup and injected; there is no package-level instance.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Cache {
	return &Cache{entries: map[string]entry{}, now: time.Now}
}

// Get returns the cached value if it is younger than ttl. Expired entries
// are dropped on access.
func (c *Cache) Get(key string, ttl time.Duration) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
}

// InvalidateAll drops every entry. Catalog writes are rare relative to
// reads, so coarse invalidation keeps correctness simple.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string]entry{}
}
