package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// coordinateParams reads lat/lon from the query string and validates their
// ranges. On failure it writes the 400 response itself and returns ok=false.
func coordinateParams(c *gin.Context) (lat, lon float64, ok bool) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon must be a number"})
		return 0, 0, false
	}
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be between -90 and 90"})
		return 0, 0, false
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon must be between -180 and 180"})
		return 0, 0, false
	}
	return lat, lon, true
}

// coordKey normalizes a coordinate pair into a cache key and broadcast topic.
// Four decimals (~11m) keep neighboring lookups on the same entry.
func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}
