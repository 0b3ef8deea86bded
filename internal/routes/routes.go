package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/handlers"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/middleware"
)

// Deps carries the wired handlers SetupRoutes needs. RateLimit and
// CacheStats may be nil; the stats route is registered outside production
// only.
type Deps struct {
	Env        string
	Geocode    *handlers.GeocodeHandler
	Weather    *handlers.WeatherHandler
	CacheStats *handlers.CacheStatsHandler
	RateLimit  gin.HandlerFunc
}

func SetupRoutes(deps Deps) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Weather History Viewer API is running",
		})
	})

	api := ginRouter.Group("/api")
	if deps.RateLimit != nil {
		api.Use(deps.RateLimit)
	}

	// Public routes (no authentication required)
	{
		api.POST("/login", handlers.Login)
		api.GET("/geocode/search", deps.Geocode.Search)
		api.GET("/geocode/reverse", deps.Geocode.Reverse)
		api.GET("/weather/history", deps.Weather.History)
	}

	// Cache introspection stays off in production
	if deps.Env != "production" && deps.CacheStats != nil {
		api.GET("/cache/stats", deps.CacheStats.Stats)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		protectedRoutes.GET("/favorites", handlers.GetFavorites)
		protectedRoutes.POST("/favorites", handlers.CreateFavorite)
		protectedRoutes.DELETE("/favorites/:id", handlers.DeleteFavorite)
		protectedRoutes.GET("/ws", handlers.WebSocketHandler)
	}

	return ginRouter
}
