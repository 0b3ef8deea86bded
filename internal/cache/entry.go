package cache

import "time"

// entry stores one cached value with its lifecycle timestamps. Entries are
// built only through newEntry, which every caller reaches with a validated
// positive ttl, so expiresAt always lies strictly after createdAt.
type entry[V any] struct {
	value          V
	expiresAt      time.Time
	createdAt      time.Time
	lastAccessedAt time.Time
}

func newEntry[V any](value V, ttl time.Duration, ts time.Time) *entry[V] {
	return &entry[V]{
		value:          value,
		expiresAt:      ts.Add(ttl),
		createdAt:      ts,
		lastAccessedAt: ts,
	}
}

// expired reports whether the entry's lifetime has passed at ts. Expiry at
// exactly ts counts as expired.
func (e *entry[V]) expired(ts time.Time) bool {
	return !e.expiresAt.After(ts)
}
