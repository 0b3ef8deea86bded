package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/cache"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/handlers"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/models"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/upstream"
)

// testDeps wires real handlers against an unreachable upstream; the routes
// under test never call out.
func testDeps(env string) Deps {
	gin.SetMode(gin.TestMode)
	cfg := cache.Config{MaxSize: 10, DefaultTTL: time.Minute, CleanupInterval: time.Minute}
	client := upstream.NewClient(upstream.Config{
		GeocodingBaseURL: "http://127.0.0.1:0",
		ReverseBaseURL:   "http://127.0.0.1:0",
		ArchiveBaseURL:   "http://127.0.0.1:0",
	})
	searchCache := cache.New[[]models.Location](cfg)
	reverseCache := cache.New[*models.ReverseLocation](cfg)
	weatherCache := cache.New[*models.HistoricalWeather](cfg)

	return Deps{
		Env:     env,
		Geocode: handlers.NewGeocodeHandler(client, searchCache, reverseCache),
		Weather: handlers.NewWeatherHandler(client, weatherCache),
		CacheStats: handlers.NewCacheStatsHandler(map[string]handlers.StatsSource{
			"search": searchCache,
		}),
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := SetupRoutes(testDeps("development"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ok")
}

func TestCacheStatsGatedByEnvironment(t *testing.T) {
	dev := SetupRoutes(testDeps("development"))
	w := httptest.NewRecorder()
	dev.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cache/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	prod := SetupRoutes(testDeps("production"))
	w = httptest.NewRecorder()
	prod.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cache/stats", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	r := SetupRoutes(testDeps("development"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/login", nil))

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r := SetupRoutes(testDeps("development"))

	for _, route := range []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/favorites"},
		{http.MethodPost, "/api/favorites"},
		{http.MethodDelete, "/api/favorites/fav-1"},
		{http.MethodGet, "/api/ws"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(route.method, route.target, nil))
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.target)
	}
}
