// Package geocoding wraps the Google Geocoding API behind the Geocoder
// port. The provider is opaque to the rest of the system: address in,
// coordinates out.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

type GoogleClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGoogleClient(apiKey string) *GoogleClient {
	return &GoogleClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
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

func (g *GoogleClient) Geocode(ctx context.Context, address string) (domain.Point, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return domain.Point{}, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return domain.Point{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Point{}, fmt.Errorf("geocoding api returned http %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Point{}, err
	}

	if body.Status == "ZERO_RESULTS" {
		return domain.Point{}, domain.ErrAddressNotFound
	}
	if body.Status != "OK" {
		return domain.Point{}, fmt.Errorf("geocoding api status %s", body.Status)
	}
	if len(body.Results) == 0 {
		return domain.Point{}, domain.ErrAddressNotFound
	}

	loc := body.Results[0].Geometry.Location
	return domain.Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}
