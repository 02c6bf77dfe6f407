package tree

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/metrics"
)

// CacheStats reports hit and miss counters for the detail cache
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedTree struct {
	Version  string
	Tree     domain.Tree
	CachedAt time.Time
}

// treeCache holds tree details (with images) and the newest-first list.
// The list is dropped on every write; details are dropped per id. Every
// write bumps gen; a load started before a write must not repopulate the
// cache with what it read.
type treeCache struct {
	details *expirable.LRU[int64, *cachedTree]
	list    *expirable.LRU[string, []domain.Tree]
	mu      sync.Mutex
	gen     uint64
	hits    atomic.Int64
	misses  atomic.Int64
}

func newTreeCache(size int, ttl time.Duration) *treeCache {
	return &treeCache{
		details: expirable.NewLRU[int64, *cachedTree](size, nil, ttl),
		list:    expirable.NewLRU[string, []domain.Tree](listCacheSize, nil, ttl),
	}
}

func (c *treeCache) Get(id int64) (domain.Tree, bool) {
	entry, ok := c.details.Get(id)
	if !ok || entry.Version != CacheSchemaVersion {
		if ok {
			c.details.Remove(id)
		}
		c.miss()
		return domain.Tree{}, false
	}
	c.hit()
	return entry.Tree, true
}

func (c *treeCache) Set(t domain.Tree) {
	c.details.Add(t.ID, &cachedTree{Version: CacheSchemaVersion, Tree: t, CachedAt: time.Now()})
}

func (c *treeCache) List() ([]domain.Tree, bool) {
	trees, ok := c.list.Get(listCacheKey)
	if ok {
		c.hit()
	} else {
		c.miss()
	}
	return trees, ok
}

// Generation is read before a store load and handed back to SetList/SetLoaded
func (c *treeCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// SetList stores trees unless a write happened since gen was read
func (c *treeCache) SetList(gen uint64, trees []domain.Tree) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.list.Add(listCacheKey, trees)
	return true
}

// SetLoaded is Set for a detail read from the store at generation gen
func (c *treeCache) SetLoaded(gen uint64, t domain.Tree) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.Set(t)
	return true
}

// Invalidate drops the list and, when id > 0, that tree's detail entry
func (c *treeCache) Invalidate(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.list.Purge()
	if id > 0 {
		c.details.Remove(id)
	}
}

func (c *treeCache) Stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load(), Size: c.details.Len()}
}

func (c *treeCache) hit() {
	c.hits.Add(1)
	metrics.TreeCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
}

func (c *treeCache) miss() {
	c.misses.Add(1)
	metrics.TreeCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
}
