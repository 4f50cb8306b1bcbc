package foursquare

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bokitas/config"
	"bokitas/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&config.CatalogConfig{
		BaseURL:           server.URL,
		APIKey:            "test-key",
		RequestsPerSecond: 100,
		Burst:             100,
		Timeout:           2 * time.Second,
	})
	require.NoError(t, err)

	return client, server
}

func TestClient_FetchPlace(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/places/fsq-abc", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"fsq_id": "fsq-abc",
			"name": "Smash Bros Burgers",
			"location": {
				"formatted_address": "123 Main St, San José",
				"address": "123 Main St",
				"locality": "San José"
			},
			"latitude": 9.93,
			"longitude": -84.08,
			"website": "https://smashbros.example",
			"categories": [{"id": 13031, "name": "Burger Joint"}],
			"photos": [{"prefix": "https://photos.example/p/", "suffix": "/photo.jpg"}]
		}`))
	}))

	details, err := client.FetchPlace(context.Background(), "fsq-abc")
	require.NoError(t, err)

	assert.Equal(t, "fsq-abc", details.ExternalID)
	assert.Equal(t, "Smash Bros Burgers", details.Name)
	assert.Equal(t, "123 Main St, San José", details.FormattedAddress)
	require.NotNil(t, details.Location)
	assert.Equal(t, 9.93, details.Location.Latitude)
	assert.Equal(t, "https://smashbros.example", details.WebsiteURL)
	require.Len(t, details.Categories, 1)
	assert.Equal(t, 13031, details.Categories[0].Code)
	require.Len(t, details.Photos, 1)
	assert.Equal(t, "https://photos.example/p/", details.Photos[0].Prefix)
}

func TestClient_FetchPlace_GeocodeFallback(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"fsq_id": "fsq-geo",
			"name": "Hidden Spot",
			"geocodes": {"main": {"latitude": 10.0, "longitude": -83.5}}
		}`))
	}))

	details, err := client.FetchPlace(context.Background(), "fsq-geo")
	require.NoError(t, err)

	assert.Nil(t, details.Location)
	require.NotNil(t, details.Geocode)
	assert.Equal(t, 10.0, details.Geocode.Latitude)
}

func TestClient_FetchPlace_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.FetchPlace(context.Background(), "fsq-missing")
	assert.ErrorIs(t, err, service.ErrPlaceNotFound)
}

func TestClient_FetchPlace_EmptyID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("request should not reach the server")
	}))

	_, err := client.FetchPlace(context.Background(), "   ")
	assert.ErrorIs(t, err, service.ErrInvalidPlaceID)
}

func TestClient_FetchPlace_RetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"fsq_id": "fsq-retry", "name": "Eventually Up"}`))
	}))

	details, err := client.FetchPlace(context.Background(), "fsq-retry")
	require.NoError(t, err)
	assert.Equal(t, "Eventually Up", details.Name)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_FetchPlace_ExhaustsRetries(t *testing.T) {
	client, err := func() (*Client, error) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusBadGateway)
		}))
		t.Cleanup(server.Close)

		return New(&config.CatalogConfig{
			BaseURL:           server.URL,
			APIKey:            "test-key",
			RequestsPerSecond: 100,
			Timeout:           2 * time.Second,
			MaxRetries:        1,
		})
	}()
	require.NoError(t, err)

	_, err = client.FetchPlace(context.Background(), "fsq-down")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(&config.CatalogConfig{BaseURL: "https://api.example"})
	assert.Error(t, err)
}
