package layout

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vellum-ui/vellum/core"
)

// DefaultCacheSize gives enough entries to store a distinct split for
// every row and every column of a large screen, which covers most
// programs. Owners with heavier layouts pass their own capacity.
const DefaultCacheSize = 500

type cacheKey struct {
	area   core.Rect
	layout string
}

// Cache memoizes Split results with LRU eviction, keyed on the layout
// and the area it was applied to. Each program constructs and owns its
// cache; there is no process-global state. Cache is safe for concurrent
// use.
type Cache struct {
	entries *lru.Cache[cacheKey, []core.Rect]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewCache creates a cache holding up to capacity split results.
// A capacity of zero or less selects DefaultCacheSize.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	entries, _ := lru.New[cacheKey, []core.Rect](capacity)
	return &Cache{entries: entries}
}

// Split returns l.Split(area), computing it on a miss and serving the
// memoized result on a hit. The returned slice is the caller's to keep.
func (c *Cache) Split(l Layout, area core.Rect) []core.Rect {
	key := cacheKey{area: area, layout: l.key()}
	if cached, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		out := make([]core.Rect, len(cached))
		copy(out, cached)
		return out
	}
	c.misses.Add(1)

	computed := l.Split(area)
	c.entries.Add(key, computed)

	out := make([]core.Rect, len(computed))
	copy(out, computed)
	return out
}

// Invalidate drops every cached result.
func (c *Cache) Invalidate() {
	c.entries.Purge()
}

// Size returns the number of cached split results.
func (c *Cache) Size() int {
	return c.entries.Len()
}

// Stats reports cache effectiveness counters.
func (c *Cache) Stats() CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses

	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return CacheStats{
		Size:    c.entries.Len(),
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
	}
}

// CacheStats holds cache effectiveness counters.
type CacheStats struct {
	Size    int
	Hits    uint64
	Misses  uint64
	HitRate float64
}
