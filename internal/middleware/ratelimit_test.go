package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/cache"
)

func limitedRouter(buckets cache.Cache[*rate.Limiter]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Refill of 1 rps is effectively zero within a single test run.
	r.Use(RateLimitMiddleware(buckets, 1, 2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimitMiddleware_ThrottlesAfterBurst(t *testing.T) {
	buckets := cache.New[*rate.Limiter](cache.Config{MaxSize: 10, DefaultTTL: time.Minute, CleanupInterval: time.Minute})
	r := limitedRouter(buckets)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code, "request %d should pass within the burst", i+1)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitMiddleware_SeparateBucketPerIP(t *testing.T) {
	buckets := cache.New[*rate.Limiter](cache.Config{MaxSize: 10, DefaultTTL: time.Minute, CleanupInterval: time.Minute})
	r := limitedRouter(buckets)

	// Exhaust the first client's bucket.
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.7:52000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "a different client must get its own bucket")
	require.Equal(t, 2, buckets.Len())
}
