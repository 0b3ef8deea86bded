package cache

import (
	"sync"
	"time"
)

// now is a small indirection to allow test stubbing.
var now = time.Now

// LRUCache is the TTL+LRU engine behind Cache. A map keyed by opaque strings
// holds the entries, an accessOrder keeps recency, and a set of short-lived
// keys bounds the scheduled sweep. One mutex serializes every operation,
// including the background sweep, so no caller can observe a partially
// updated table (an eviction-then-insert sequence is atomic).
type LRUCache[V any] struct {
	mu sync.Mutex

	maxSize         int
	defaultTTL      time.Duration
	cleanupInterval time.Duration

	items map[string]*entry[V]
	order *accessOrder

	// shortLived holds keys stored with ttl <= cleanupInterval, i.e. keys
	// unlikely to survive past the next sweep tick. Cleanup drains this
	// set before it ever considers scanning the whole table.
	shortLived map[string]struct{}

	hits   uint64
	misses uint64

	sweeper *janitor
}

// New constructs the cache for one namespace. Non-positive Config fields fall
// back to the package defaults; New never returns nil. The background sweep
// is not started here; call StartCleanup from the owning process.
func New[V any](cfg Config) *LRUCache[V] {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = DefaultTTL
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultCleanupInterval
	}
	return &LRUCache[V]{
		maxSize:         cfg.MaxSize,
		defaultTTL:      cfg.DefaultTTL,
		cleanupInterval: cfg.CleanupInterval,
		items:           make(map[string]*entry[V]),
		order:           newAccessOrder(),
		shortLived:      make(map[string]struct{}),
		sweeper:         newJanitor(cfg.CleanupInterval),
	}
}

// Get implements Cache.Get.
func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.items[key]
	if !ok {
		c.misses++
		return zero, false
	}
	ts := now()
	if e.expired(ts) {
		// Remove before reporting the miss so Has/Len reflect it.
		c.removeLocked(key)
		c.misses++
		return zero, false
	}
	e.lastAccessedAt = ts
	c.order.Touch(key)
	c.hits++
	return e.value, true
}

// Set implements Cache.Set.
func (c *LRUCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value, c.defaultTTL)
}

// SetWithTTL implements Cache.SetWithTTL.
func (c *LRUCache[V]) SetWithTTL(key string, value V, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value, ttl)
	return nil
}

// setLocked replaces any existing entry outright: an overwrite resets both
// createdAt and expiresAt, not just the expiry. Eviction happens before the
// insert, never after, so the table never holds more than maxSize entries.
func (c *LRUCache[V]) setLocked(key string, value V, ttl time.Duration) {
	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxSize {
		if victim, ok := c.order.EvictOldest(); ok {
			delete(c.items, victim)
			delete(c.shortLived, victim)
		}
	}

	c.items[key] = newEntry(value, ttl, now())
	c.order.Touch(key)

	if ttl <= c.cleanupInterval {
		c.shortLived[key] = struct{}{}
	} else {
		// An overwrite with a longer ttl drops the key's candidacy.
		delete(c.shortLived, key)
	}
}

// Has implements Cache.Has.
func (c *LRUCache[V]) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return false
	}
	if e.expired(now()) {
		c.removeLocked(key)
		return false
	}
	return true
}

// Delete implements Cache.Delete.
func (c *LRUCache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok {
		return false
	}
	c.removeLocked(key)
	return true
}

// Len implements Cache.Len.
func (c *LRUCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear implements Cache.Clear.
func (c *LRUCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry[V])
	c.order.Clear()
	c.shortLived = make(map[string]struct{})
	c.hits = 0
	c.misses = 0
}

// Cleanup implements Cache.Cleanup. When the short-lived candidate set is
// non-empty, only those keys are checked and the set is drained; a candidate
// that has not expired yet is left to lazy expiry or a later full scan. The
// full-table scan runs only when there were no candidates to check.
func (c *LRUCache[V]) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := now()
	removed := 0

	if len(c.shortLived) > 0 {
		for key := range c.shortLived {
			delete(c.shortLived, key)
			e, ok := c.items[key]
			if !ok {
				continue
			}
			if e.expired(ts) {
				delete(c.items, key)
				c.order.Remove(key)
				removed++
			}
		}
		return removed
	}

	for key, e := range c.items {
		if e.expired(ts) {
			c.removeLocked(key)
			removed++
		}
	}
	return removed
}

// StartCleanup implements Cache.StartCleanup.
func (c *LRUCache[V]) StartCleanup() {
	c.sweeper.start(func() { c.Cleanup() })
}

// StopCleanup implements Cache.StopCleanup.
func (c *LRUCache[V]) StopCleanup() {
	c.sweeper.stop()
}

// Stats implements Cache.Stats.
func (c *LRUCache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total) * 100
	}
	return Stats{
		Size:            len(c.items),
		MaxSize:         c.maxSize,
		TTL:             c.defaultTTL,
		CleanupInterval: c.cleanupInterval,
		Hits:            c.hits,
		Misses:          c.misses,
		HitRate:         hitRate,
	}
}

// removeLocked drops key from the table, the recency order and the candidate
// set in one step; the three structures are co-maintained.
func (c *LRUCache[V]) removeLocked(key string) {
	delete(c.items, key)
	c.order.Remove(key)
	delete(c.shortLived, key)
}

// Ensure LRUCache implements Cache at compile time.
var _ Cache[any] = (*LRUCache[any])(nil)
