package jptr

import "sync"

// Cache memoizes Parse results so hot paths can pass pointer strings without
// re-tokenizing on every call. Entries are kept forever; use a dedicated
// Cache rather than DefaultCache when paths come from unbounded input.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Pointer
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]Pointer)}
}

var DefaultCache = NewCache()

// Parse returns the cached Pointer for s, parsing and storing it on first
// use. Parse failures are returned without being cached.
func (c *Cache) Parse(s string) (Pointer, error) {
	c.mu.RLock()
	p, ok := c.entries[s]
	c.mu.RUnlock()
	if ok {
		return p, nil
	}

	p, err := Parse(s)
	if err != nil {
		return Pointer{}, err
	}

	c.mu.Lock()
	c.entries[s] = p
	c.mu.Unlock()
	return p, nil
}

// Len returns the number of cached pointers.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
