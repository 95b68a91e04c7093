// Package geocode wraps the external geocoding API behind a small
// request/response interface with an explicit timeout, so call sites
// never deal with the provider's callback-style contract.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"coffeemap/models"
)

// ErrTimeout is returned when the provider did not answer within the
// configured deadline.
var ErrTimeout = errors.New("geocode: request timed out")

// ErrNoResult is returned when the address resolved to nothing.
var ErrNoResult = errors.New("geocode: no result for address")

// Geocoder maps a free-text address to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Coordinate, error)
}

const defaultTimeout = 10 * time.Second

// GoogleGeocoder implements Geocoder against the Google Geocoding API.
type GoogleGeocoder struct {
	apiKey  string
	client  *http.Client
	timeout time.Duration
	baseURL string
}

// NewGoogleGeocoder creates a Geocoder using the given API key.
func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey:  apiKey,
		client:  &http.Client{},
		timeout: defaultTimeout,
		baseURL: "https://maps.googleapis.com/maps/api/geocode/json",
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves the address, honoring a 10 second deadline on top of
// whatever deadline the caller's context already carries.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (models.Coordinate, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode: failed to build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return models.Coordinate{}, ErrTimeout
		}
		return models.Coordinate{}, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinate{}, fmt.Errorf("geocode: provider returned status %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode: failed to decode response: %w", err)
	}
	if decoded.Status == "ZERO_RESULTS" || len(decoded.Results) == 0 {
		return models.Coordinate{}, ErrNoResult
	}
	if decoded.Status != "OK" {
		return models.Coordinate{}, fmt.Errorf("geocode: provider status %s", decoded.Status)
	}

	loc := decoded.Results[0].Geometry.Location
	coord := models.Coordinate{Latitude: loc.Lat, Longitude: loc.Lng}
	if !coord.Valid() {
		return models.Coordinate{}, fmt.Errorf("geocode: provider returned out-of-bounds coordinate")
	}
	return coord, nil
}
