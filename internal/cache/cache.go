// Package cache provides a bounded in-process TTL cache for external API
// responses. Entries live until they go stale or get evicted when the cache
// grows past its capacity; a process restart clears everything.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value      any
	insertedAt time.Time
}

// Cache is a capacity-bounded key/value store with time-based staleness.
type Cache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time
	entries  map[string]entry
	order    []string
}

// New creates a cache holding at most capacity entries, each valid for ttl.
func New(capacity int, ttl time.Duration) *Cache {
	if capacity < 2 {
		capacity = 2
	}
	return &Cache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[string]entry),
	}
}

// Get returns the cached value for key if present and not stale.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.insertedAt) >= c.ttl {
		delete(c.entries, key)
		c.dropFromOrder(key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, evicting the oldest half of the cache once it
// grows past capacity.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.dropFromOrder(key)
	}
	c.entries[key] = entry{value: value, insertedAt: c.now()}
	c.order = append(c.order, key)

	if len(c.entries) > c.capacity {
		keep := c.capacity / 2
		evict := c.order[:len(c.order)-keep]
		for _, old := range evict {
			delete(c.entries, old)
		}
		c.order = append([]string(nil), c.order[len(c.order)-keep:]...)
	}
}

// Len reports the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) dropFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
