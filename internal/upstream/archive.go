package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/models"
)

// HistoricalWeather fetches the daily series for a coordinate over an
// inclusive date range. Dates use the 2006-01-02 layout; the handler
// validates them before calling here.
func (c *Client) HistoricalWeather(ctx context.Context, query models.WeatherQuery) (*models.HistoricalWeather, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(query.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(query.Longitude, 'f', -1, 64))
	q.Set("start_date", query.StartDate)
	q.Set("end_date", query.EndDate)
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum")
	q.Set("timezone", "auto")

	var payload models.HistoricalWeather
	endpoint := fmt.Sprintf("%s/v1/archive?%s", c.archive, q.Encode())
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("historical weather: %w", err)
	}
	return &payload, nil
}
