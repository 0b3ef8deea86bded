package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/cache"
)

func TestCacheStats_ReportsNamespaces(t *testing.T) {
	gin.SetMode(gin.TestMode)

	searchCache := cache.New[string](testCacheConfig())
	searchCache.Set("berlin|10", "payload")
	searchCache.Get("berlin|10") // hit
	searchCache.Get("missing")   // miss

	weatherCache := cache.New[string](testCacheConfig())

	h := NewCacheStatsHandler(map[string]StatsSource{
		"search":  searchCache,
		"weather": weatherCache,
	})

	r := gin.New()
	r.GET("/api/cache/stats", h.Stats)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cache/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp, "search")
	require.Contains(t, resp, "weather")

	search := resp["search"]
	require.Equal(t, float64(1), search["size"])
	require.Equal(t, float64(10), search["maxSize"])
	require.Equal(t, float64(1), search["hits"])
	require.Equal(t, float64(1), search["misses"])
	require.Equal(t, float64(50), search["hitRate"])
	require.Equal(t, "1m0s", search["ttl"])

	require.Equal(t, float64(0), resp["weather"]["hitRate"])
}
