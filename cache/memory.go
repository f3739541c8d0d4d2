package cache

import (
	"context"
	"sync"
)

// MemoryCache is an in-memory, grow-only Cache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[ViewKey]string
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[ViewKey]string),
	}
}

// Get retrieves a view path from the cache.
func (c *MemoryCache) Get(_ context.Context, key ViewKey) (string, bool) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	return v, ok
}

// Set stores a view path under key.
func (c *MemoryCache) Set(_ context.Context, key ViewKey, viewPath string) error {
	c.mu.Lock()
	c.entries[key] = viewPath
	c.mu.Unlock()

	return nil
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Snapshot returns a copy of all entries, for diagnostics.
func (c *MemoryCache) Snapshot() map[ViewKey]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[ViewKey]string, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}

// Ensure MemoryCache implements Cache
var _ Cache = (*MemoryCache)(nil)
