package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/cache"
)

// StatsSource exposes the counters of one cache namespace.
type StatsSource interface {
	Stats() cache.Stats
}

// CacheStatsHandler reports per-namespace cache counters. The route is only
// wired up outside production.
type CacheStatsHandler struct {
	namespaces map[string]StatsSource
}

func NewCacheStatsHandler(namespaces map[string]StatsSource) *CacheStatsHandler {
	return &CacheStatsHandler{namespaces: namespaces}
}

// Stats handles GET /api/cache/stats
func (h *CacheStatsHandler) Stats(c *gin.Context) {
	out := gin.H{}
	for name, src := range h.namespaces {
		stats := src.Stats()
		out[name] = gin.H{
			"size":            stats.Size,
			"maxSize":         stats.MaxSize,
			"ttl":             stats.TTL.String(),
			"cleanupInterval": stats.CleanupInterval.String(),
			"hits":            stats.Hits,
			"misses":          stats.Misses,
			"hitRate":         stats.HitRate,
		}
	}
	c.JSON(http.StatusOK, out)
}
