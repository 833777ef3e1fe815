package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gainablefr/gainable-backend/internal/dto"
)

var ErrCityNotFound = errors.New("city not found")

// GeocodeService resolves a typed city to coordinates through the BAN
// geocoder (api-adresse.data.gouv.fr). One best-effort call per search, no
// retries.
type GeocodeService struct {
	baseURL string
	client  *http.Client
}

func NewGeocodeService(baseURL string, timeout time.Duration) *GeocodeService {
	return &GeocodeService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// banResponse mirrors the GeoJSON subset we read: coordinates come back as
// [longitude, latitude].
type banResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			City  string `json:"city"`
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

func (s *GeocodeService) CityToPoint(ctx context.Context, city, postcode string) (*dto.GeocodeResponse, error) {
	if strings.TrimSpace(city) == "" {
		return nil, ErrCityNotFound
	}

	params := url.Values{
		"q":     {city},
		"type":  {"municipality"},
		"limit": {"1"},
	}
	if postcode != "" {
		params.Set("postcode", postcode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search/?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding returned %d", resp.StatusCode)
	}

	var parsed banResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("geocoding returned invalid JSON: %w", err)
	}
	if len(parsed.Features) == 0 || len(parsed.Features[0].Geometry.Coordinates) < 2 {
		return nil, ErrCityNotFound
	}

	f := parsed.Features[0]
	return &dto.GeocodeResponse{
		Lat:   f.Geometry.Coordinates[1],
		Lng:   f.Geometry.Coordinates[0],
		City:  f.Properties.City,
		Label: f.Properties.Label,
	}, nil
}
