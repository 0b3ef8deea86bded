// Package upstream talks to the public weather services this app fronts:
// Open-Meteo for place search and historical weather, BigDataCloud for
// reverse geocoding. Every call is a plain GET returning JSON; callers cache
// the decoded results, so no caching happens here.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config points the client at the upstream services. The base URLs are
// overridable so tests can aim at local servers.
type Config struct {
	GeocodingBaseURL string
	ReverseBaseURL   string
	ArchiveBaseURL   string
	Timeout          time.Duration
}

// Client wraps the three upstream services behind typed methods.
type Client struct {
	http      *http.Client
	geocoding string
	reverse   string
	archive   string
}

// NewClient builds a Client; a non-positive Timeout falls back to 10s.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		geocoding: strings.TrimSuffix(cfg.GeocodingBaseURL, "/"),
		reverse:   strings.TrimSuffix(cfg.ReverseBaseURL, "/"),
		archive:   strings.TrimSuffix(cfg.ArchiveBaseURL, "/"),
	}
}

// getJSON performs one GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream responded %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
