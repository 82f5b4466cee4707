// Package clients holds the HTTP clients for the external APIs the service
// consumes: Google Places and api-futebol.com.br.
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"esporte-social/internal/models"
	"esporte-social/internal/observability"
)

// ErrNotConfigured is returned when a client has no API key.
var ErrNotConfigured = errors.New("api key not configured")

const (
	defaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place"
	searchRadiusMeters   = 2000
)

// PlacesClient queries the Google Places nearby search API.
type PlacesClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPlacesClient constructs a PlacesClient.
func NewPlacesClient(apiKey string) *PlacesClient {
	return &PlacesClient{
		apiKey:     apiKey,
		baseURL:    defaultPlacesBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type placesResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name     string  `json:"name"`
		Vicinity string  `json:"vicinity"`
		Rating   float64 `json:"rating"`
		PlaceID  string  `json:"place_id"`
	} `json:"results"`
}

// NearbyBars searches bars within the fixed radius around a coordinate.
func (c *PlacesClient) NearbyBars(ctx context.Context, latitude, longitude float64) ([]models.Establishment, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", latitude, longitude))
	params.Set("radius", fmt.Sprintf("%d", searchRadiusMeters))
	params.Set("type", "bar")
	params.Set("key", c.apiKey)

	var payload placesResponse
	if err := c.getJSON(ctx, c.baseURL+"/nearbysearch/json?"+params.Encode(), &payload); err != nil {
		observability.IncExternalRequest("places", "error")
		return nil, err
	}

	if payload.Status != "OK" {
		observability.IncExternalRequest("places", "error")
		return nil, fmt.Errorf("google api error: %s", payload.Status)
	}

	establishments := make([]models.Establishment, 0, len(payload.Results))
	for _, place := range payload.Results {
		establishments = append(establishments, models.Establishment{
			Name:    place.Name,
			Address: place.Vicinity,
			Rating:  place.Rating,
			PlaceID: place.PlaceID,
		})
	}

	observability.IncExternalRequest("places", "ok")
	return establishments, nil
}

func (c *PlacesClient) getJSON(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places request: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
