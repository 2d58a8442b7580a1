package hashing

import (
	"sync"
)

type cacheKey struct {
	key   uint64
	depth int
}

// PerftCache stores leaf counts by position key and depth. It is safe for
// concurrent use by the perft workers.
type PerftCache struct {
	mu          sync.RWMutex
	entries     map[cacheKey]uint64
	maxCapacity int
	hits        uint64
	misses      uint64
}

// NewPerftCache creates an empty cache.
// maxCapacity of 0 means unlimited capacity; once a bounded cache is full
// new results are no longer stored.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		entries:     make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for key at depth.
func (c *PerftCache) Lookup(key uint64, depth int) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	nodes, ok := c.entries[cacheKey{key, depth}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return nodes, ok
}

// Store records the count for key at depth.
func (c *PerftCache) Store(key uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity {
		return
	}
	c.entries[cacheKey{key, depth}] = nodes
}

// Len returns the number of stored entries.
func (c *PerftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the lookup hit and miss counts.
func (c *PerftCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}
