package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/cache"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/config"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/database"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/handlers"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/middleware"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/models"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/routes"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/upstream"
)

func main() {
	cfg := config.Load()

	// Init database
	database.InitDB(cfg.DBPath)

	client := upstream.NewClient(upstream.Config{
		GeocodingBaseURL: cfg.GeocodingBaseURL,
		ReverseBaseURL:   cfg.ReverseBaseURL,
		ArchiveBaseURL:   cfg.ArchiveBaseURL,
	})

	// One cache namespace per concern; sweepers run until shutdown
	searchCache := cache.New[[]models.Location](cfg.SearchCache)
	reverseCache := cache.New[*models.ReverseLocation](cfg.ReverseCache)
	weatherCache := cache.New[*models.HistoricalWeather](cfg.WeatherCache)
	limiterCache := cache.New[*rate.Limiter](cfg.LimiterCache)

	searchCache.StartCleanup()
	reverseCache.StartCleanup()
	weatherCache.StartCleanup()
	limiterCache.StartCleanup()

	ginRoutes := routes.SetupRoutes(routes.Deps{
		Env:     cfg.Env,
		Geocode: handlers.NewGeocodeHandler(client, searchCache, reverseCache),
		Weather: handlers.NewWeatherHandler(client, weatherCache),
		CacheStats: handlers.NewCacheStatsHandler(map[string]handlers.StatsSource{
			"search":         searchCache,
			"reverseGeocode": reverseCache,
			"weather":        weatherCache,
			"rateLimiter":    limiterCache,
		}),
		RateLimit: middleware.RateLimitMiddleware(limiterCache, cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: ginRoutes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		log.Println("API endpoints:")
		log.Println("  POST   /api/login")
		log.Println("  GET    /api/geocode/search")
		log.Println("  GET    /api/geocode/reverse")
		log.Println("  GET    /api/weather/history")
		log.Println("  GET    /api/favorites")
		log.Println("  POST   /api/favorites")
		log.Println("  DELETE /api/favorites/:id")
		log.Println("  GET    /api/ws")
		log.Println("  GET    /health")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Server shutdown error:", err)
	}

	searchCache.StopCleanup()
	reverseCache.StopCleanup()
	weatherCache.StopCleanup()
	limiterCache.StopCleanup()

	log.Println("Server stopped")
}
