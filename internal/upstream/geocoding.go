package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/models"
)

type searchResponse struct {
	Results []models.Location `json:"results"`
}

// SearchLocations looks up place names matching query. Open-Meteo drops the
// results field entirely when nothing matches, so no match decodes as a nil
// slice rather than an error.
func (c *Client) SearchLocations(ctx context.Context, query string, count int) ([]models.Location, error) {
	q := url.Values{}
	q.Set("name", query)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", "en")
	q.Set("format", "json")

	var payload searchResponse
	endpoint := fmt.Sprintf("%s/v1/search?%s", c.geocoding, q.Encode())
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("search locations: %w", err)
	}
	return payload.Results, nil
}

// ReverseGeocode resolves a coordinate to the nearest named place.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.ReverseLocation, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("localityLanguage", "en")

	var payload models.ReverseLocation
	endpoint := fmt.Sprintf("%s/data/reverse-geocode-client?%s", c.reverse, q.Encode())
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("reverse geocode: %w", err)
	}
	return &payload, nil
}
