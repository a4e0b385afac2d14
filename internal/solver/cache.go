// internal/solver/cache.go
//
// Memoization of opening recommendations. The first recommendation of a
// session depends only on the loaded lexicon and dominates solve time
// (every guess is scored against the full answer vocabulary), so callers
// cache it keyed by a lexicon signature.
//
// Characteristics:
//   - Stores ScoredGuess values keyed by signature in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package solver

import "sync"

// OpenerCache memoizes opening recommendations per lexicon signature.
// Implementations may be backed by memory (this package) or disk.
type OpenerCache interface {
	// Get returns the cached opener for key, if present.
	Get(key string) (ScoredGuess, bool)

	// Put records the opener for key, overwriting any previous entry.
	Put(key string, sg ScoredGuess)
}

// memoryCache is an in-memory map-based OpenerCache implementation.
type memoryCache struct {
	mu sync.RWMutex // guards openers map
	m  map[string]ScoredGuess
}

// NewMemoryOpenerCache constructs a new in-memory OpenerCache.
func NewMemoryOpenerCache() OpenerCache {
	return &memoryCache{m: make(map[string]ScoredGuess)}
}

func (c *memoryCache) Get(key string) (ScoredGuess, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sg, ok := c.m[key]
	return sg, ok
}

func (c *memoryCache) Put(key string, sg ScoredGuess) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = sg
}
