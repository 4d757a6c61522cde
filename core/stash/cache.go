package stash

import (
	"encoding/json"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry holds one cached find response.
type cacheEntry struct {
	data  []byte
	built time.Time
}

// findCache is a TTL cache over find query responses, keyed by entity type,
// operation name and variables. Entries for a whole entity type are dropped
// whenever a mutation touches that type.
type findCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	byType  map[string]map[string]struct{}
	ttl     time.Duration
	sf      singleflight.Group
}

func newFindCache(ttl time.Duration) *findCache {
	return &findCache{
		entries: make(map[string]cacheEntry),
		byType:  make(map[string]map[string]struct{}),
		ttl:     ttl,
	}
}

// cacheKey builds a stable key from the entity type, operation and variables.
func cacheKey(entity, op string, vars map[string]any) string {
	encoded, _ := json.Marshal(vars)
	return entity + "|" + op + "|" + string(encoded)
}

// getOrLoad returns the cached response for key, or loads it via load.
// Concurrent misses for the same key collapse into one load via singleflight.
func (c *findCache) getOrLoad(key, entity string, load func() ([]byte, error)) ([]byte, error) {
	if c.ttl <= 0 {
		return load()
	}

	// Fast path: fresh entry present
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()
	if exists && time.Since(entry.built) <= c.ttl {
		return entry.data, nil
	}

	result, err, _ := c.sf.Do(key, func() (any, error) {
		// Double-check after acquiring the singleflight slot
		c.mu.RLock()
		entry, exists := c.entries[key]
		c.mu.RUnlock()
		if exists && time.Since(entry.built) <= c.ttl {
			return entry.data, nil
		}

		data, err := load()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = cacheEntry{data: data, built: time.Now()}
		keys, ok := c.byType[entity]
		if !ok {
			keys = make(map[string]struct{})
			c.byType[entity] = keys
		}
		keys[key] = struct{}{}
		c.mu.Unlock()

		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

// invalidate drops all cached responses for the given entity type.
func (c *findCache) invalidate(entity string) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	for key := range c.byType[entity] {
		delete(c.entries, key)
	}
	delete(c.byType, entity)
	c.mu.Unlock()
}
