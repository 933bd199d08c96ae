package cache

import (
	"encoding/json"
	"sync"
	"time"
)

// MemoryCache is the in-process store. Concurrent requests for the same key
// may interleave a stale read with a fresh write; last writer wins.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]Entry)}
}

func (c *MemoryCache) Get(key string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return &e, true
}

func (c *MemoryCache) Put(key string, payload json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = Entry{Timestamp: time.Now(), Payload: payload}
}

// PutAt stores an entry with an explicit timestamp. Used by tests and by
// restores from an external source.
func (c *MemoryCache) PutAt(key string, payload json.RawMessage, ts time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = Entry{Timestamp: ts, Payload: payload}
}

func (c *MemoryCache) Close() error { return nil }
