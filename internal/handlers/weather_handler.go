package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/cache"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/models"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/realtime"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/upstream"
)

const (
	dateLayout = "2006-01-02"
	// Open-Meteo serves at most a year per archive request; a leap year is
	// 366 days.
	maxRangeDays = 366
)

// WeatherHandler serves historical daily weather backed by the archive cache.
type WeatherHandler struct {
	client *upstream.Client
	cache  cache.Cache[*models.HistoricalWeather]
}

func NewWeatherHandler(client *upstream.Client, weatherCache cache.Cache[*models.HistoricalWeather]) *WeatherHandler {
	return &WeatherHandler{client: client, cache: weatherCache}
}

func parseDateFlexible(dateStr string) (time.Time, bool) {
	if dateStr == "" {
		return time.Time{}, false
	}
	layouts := []string{
		"2006-01-02",  // ISO date
		"2 Jan 2006",  // e.g., 30 Oct 2025
		time.RFC3339,  // full RFC3339
		"02 Jan 2006", // zero-padded day
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// History handles GET /api/weather/history
// Query params: lat, lon, start_date, end_date (inclusive range)
func (h *WeatherHandler) History(c *gin.Context) {
	lat, lon, ok := coordinateParams(c)
	if !ok {
		return
	}

	start, okStart := parseDateFlexible(c.Query("start_date"))
	end, okEnd := parseDateFlexible(c.Query("end_date"))
	if !okStart || !okEnd {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start_date and end_date are required, e.g. 2024-01-31",
		})
		return
	}

	// Normalize to midnight so range math ignores any time-of-day part
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}
	if days := int(end.Sub(start).Hours()/24) + 1; days > maxRangeDays {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Date range is limited to %d days", maxRangeDays),
		})
		return
	}
	if end.After(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be in the future"})
		return
	}

	query := models.WeatherQuery{
		Latitude:  lat,
		Longitude: lon,
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
	}

	key := fmt.Sprintf("%s|%s|%s", coordKey(lat, lon), query.StartDate, query.EndDate)
	if weather, ok := h.cache.Get(key); ok {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, weather)
		return
	}

	weather, err := h.client.HistoricalWeather(c.Request.Context(), query)
	if err != nil {
		log.Println("historical weather fetch failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Historical weather is unavailable"})
		return
	}

	h.cache.Set(key, weather)

	// Tell everyone watching this location that fresh data landed
	evt := map[string]any{
		"type":      "weather_refreshed",
		"location":  coordKey(lat, lon),
		"startDate": query.StartDate,
		"endDate":   query.EndDate,
	}
	if bytes, err := json.Marshal(evt); err == nil {
		realtime.GetHub().Broadcast(coordKey(lat, lon), bytes)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, weather)
}
