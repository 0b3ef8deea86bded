package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/cache"
)

// RateLimitMiddleware throttles clients with one token bucket per IP. Bucket
// state lives in a cache namespace rather than a plain map, so buckets of
// idle clients age out with the namespace ttl instead of accumulating.
func RateLimitMiddleware(buckets cache.Cache[*rate.Limiter], rps float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter, ok := buckets.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
			buckets.Set(ip, limiter)
		}

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, slow down",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
