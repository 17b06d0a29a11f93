package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GoogleClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewGoogleClient("test-key")
	client.baseURL = srv.URL
	return client
}

func TestGeocode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Av. Paulista, 100", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"geometry": {"location": {"lat": -23.5505, "lng": -46.6333}}}
			]
		}`))
	})

	got, err := client.Geocode(context.Background(), "Av. Paulista, 100")
	assert.NoError(t, err)
	assert.Equal(t, domain.Point{Lat: -23.5505, Lng: -46.6333}, got)
}

func TestGeocode_ZeroResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := client.Geocode(context.Background(), "asdfghjkl")
	assert.ErrorIs(t, err, domain.ErrAddressNotFound)
}

func TestGeocode_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	})

	_, err := client.Geocode(context.Background(), "Av. Paulista, 100")
	assert.ErrorContains(t, err, "REQUEST_DENIED")
}

func TestGeocode_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Geocode(context.Background(), "Av. Paulista, 100")
	assert.ErrorContains(t, err, "503")
}
