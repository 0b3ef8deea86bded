package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/cache"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/models"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/upstream"
)

// GeocodeHandler serves place search and reverse geocoding, caching upstream
// responses per normalized query. Upstream failures are never cached.
type GeocodeHandler struct {
	client       *upstream.Client
	searchCache  cache.Cache[[]models.Location]
	reverseCache cache.Cache[*models.ReverseLocation]
}

func NewGeocodeHandler(client *upstream.Client, searchCache cache.Cache[[]models.Location], reverseCache cache.Cache[*models.ReverseLocation]) *GeocodeHandler {
	return &GeocodeHandler{
		client:       client,
		searchCache:  searchCache,
		reverseCache: reverseCache,
	}
}

// Search handles GET /api/geocode/search
// Query params: q (min 2 chars), count (default 10, max 100)
func (h *GeocodeHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter q must be at least 2 characters",
		})
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil || count < 1 {
		count = 10
	}
	if count > 100 {
		count = 100
	}

	// Case-insensitive key so "Berlin" and "berlin" share one entry.
	key := fmt.Sprintf("%s|%d", strings.ToLower(query), count)
	if locations, ok := h.searchCache.Get(key); ok {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, gin.H{
			"results": locations,
			"count":   len(locations),
		})
		return
	}

	locations, err := h.client.SearchLocations(c.Request.Context(), query, count)
	if err != nil {
		log.Println("location search failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Location search is unavailable",
		})
		return
	}
	if locations == nil {
		locations = []models.Location{}
	}

	h.searchCache.Set(key, locations)
	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, gin.H{
		"results": locations,
		"count":   len(locations),
	})
}

// Reverse handles GET /api/geocode/reverse
// Query params: lat, lon
func (h *GeocodeHandler) Reverse(c *gin.Context) {
	lat, lon, ok := coordinateParams(c)
	if !ok {
		return
	}

	key := coordKey(lat, lon)
	if place, ok := h.reverseCache.Get(key); ok {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, place)
		return
	}

	place, err := h.client.ReverseGeocode(c.Request.Context(), lat, lon)
	if err != nil {
		log.Println("reverse geocode failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Reverse geocoding is unavailable",
		})
		return
	}

	h.reverseCache.Set(key, place)
	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, place)
}
