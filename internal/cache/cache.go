// Package cache implements the in-memory TTL+LRU cache engine behind the
// lookup namespaces (location search, reverse geocoding, historical weather).
// One instance is constructed per namespace, each with its own size and TTL
// policy, and handed to the code that needs it; there are no package-level
// cache singletons, so tests and tiers can own isolated instances.
package cache

import (
	"errors"
	"time"
)

// ErrInvalidTTL is returned by SetWithTTL when ttl is not strictly positive.
// The cache is left unmodified; callers should fix the TTL or skip memoizing
// and fall through to a direct lookup.
var ErrInvalidTTL = errors.New("cache: ttl must be positive")

// Defaults applied by New for unset Config fields.
const (
	DefaultMaxSize         = 1000
	DefaultTTL             = 5 * time.Minute
	DefaultCleanupInterval = time.Minute
)

// Config controls one cache namespace.
type Config struct {
	// MaxSize is the entry capacity. Inserting into a full cache evicts the
	// least recently used key first; the size never exceeds MaxSize.
	MaxSize int

	// DefaultTTL is the lifetime applied by Set. SetWithTTL overrides it
	// per entry.
	DefaultTTL time.Duration

	// CleanupInterval is the cadence of the background sweep started by
	// StartCleanup. Entries stored with a TTL no longer than this are
	// tracked as sweep candidates so a tick does not have to scan the
	// whole table.
	CleanupInterval time.Duration
}

// Cache is the contract every lookup namespace exposes. Implementations are
// safe for concurrent use; every operation runs to completion before another
// can observe the cache.
type Cache[V any] interface {
	// Get returns the live value for key. Expired entries are removed on
	// the spot and reported as absent. Hit/miss counters move only here.
	Get(key string) (V, bool)

	// Set stores the value under key with the namespace default TTL,
	// replacing any existing entry outright.
	Set(key string, value V)

	// SetWithTTL stores the value with an explicit lifetime. It returns
	// ErrInvalidTTL (and stores nothing) when ttl <= 0.
	SetWithTTL(key string, value V, ttl time.Duration) error

	// Has reports whether key holds a live value. Expired entries are
	// removed like in Get, but Has never touches recency order or the
	// hit/miss counters, so existence probes cannot perturb eviction.
	Has(key string) bool

	// Delete removes key if present and reports whether it was; idempotent.
	Delete(key string) bool

	// Len returns the number of stored entries. It can transiently count
	// entries that have expired but were not yet swept or re-read.
	Len() int

	// Clear empties the cache and resets the hit/miss counters; idempotent.
	Clear()

	// Cleanup sweeps expired entries immediately and returns how many were
	// removed. The background sweep goes through the same path.
	Cleanup() int

	// StartCleanup launches the periodic sweep. A running sweep is stopped
	// first, so repeated starts are safe.
	StartCleanup()

	// StopCleanup cancels the periodic sweep and waits for it to exit.
	// Safe to call when not running; call on shutdown to release the timer.
	StopCleanup()

	// Stats returns a point-in-time snapshot of the namespace.
	Stats() Stats
}
