// Package geocode implements address autocomplete against a Nominatim-style
// search endpoint. Lookups are best-effort: any failure yields an empty
// result list rather than an error.
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout = 5 * time.Second
	defaultLimit   = 5
)

// Place is one address suggestion.
type Place struct {
	// DisplayName is the full formatted address.
	DisplayName string
	// Lat is the latitude in degrees.
	Lat float64
	// Lon is the longitude in degrees.
	Lon float64
}

// Client queries the geocoding service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limit      int
}

// New creates a Client for the given search service base URL. When
// httpClient is nil a default client with a short timeout is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
		limit:      defaultLimit,
	}
}

// Search returns address suggestions for the free-text query. It never
// fails: transport errors, bad statuses and malformed bodies all degrade
// to an empty slice.
func (c *Client) Search(ctx context.Context, query string) []Place {
	if strings.TrimSpace(query) == "" || c.baseURL == "" {
		return nil
	}

	q := url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {strconv.Itoa(c.limit)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	// Nominatim encodes coordinates as strings.
	var raw []struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil
	}

	places := make([]Place, 0, len(raw))
	for _, r := range raw {
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lon, errLon := strconv.ParseFloat(r.Lon, 64)
		if errLat != nil || errLon != nil {
			continue
		}
		places = append(places, Place{DisplayName: r.DisplayName, Lat: lat, Lon: lon})
	}
	return places
}
