// Package viewcache holds rendered view payloads keyed by view path so
// listing reads can be served without re-querying, and gives mutations
// an explicit way to mark a path's data stale.
package viewcache

import "sync"

type Cache struct {
	mu sync.RWMutex

	// paths maps a view path to its cached payloads, keyed by the
	// request variant (query string). Invalidation drops the whole
	// path bucket so every variant refetches.
	paths map[string]map[string][]byte
}

func New() *Cache {
	return &Cache{paths: make(map[string]map[string][]byte)}
}

// Get returns the cached payload for a path variant, if it is fresh.
func (c *Cache) Get(path, variant string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	payload, ok := c.paths[path][variant]

	return payload, ok
}

// Put stores a freshly rendered payload for a path variant.
func (c *Cache) Put(path, variant string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	bucket, ok := c.paths[path]
	if !ok {
		bucket = make(map[string][]byte)
		c.paths[path] = bucket
	}

	bucket[variant] = payload
}

// Invalidate marks every payload under the path stale. Invalidating a
// path with nothing cached is a no-op.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.paths, path)
}
