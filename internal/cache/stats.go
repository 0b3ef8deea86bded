package cache

import "time"

// Stats is a point-in-time snapshot of one cache namespace. Hits and Misses
// count Get outcomes only (Has probes are excluded) and are reset by Clear.
// HitRate is a percentage in [0, 100]; it is 0 before the first Get.
type Stats struct {
	Size            int
	MaxSize         int
	TTL             time.Duration
	CleanupInterval time.Duration
	Hits            uint64
	Misses          uint64
	HitRate         float64
}
