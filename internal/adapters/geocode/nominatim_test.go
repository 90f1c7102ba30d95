package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-planner-service/internal/adapters/cache"
)

func TestNominatimGeocoderParsesResult(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Tokyo Tower", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"35.6586","lon":"139.7454"}]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, nil)
	coords, err := g.Geocode(context.Background(), "  Tokyo   Tower ")
	require.NoError(t, err)
	assert.InDelta(t, 35.6586, coords.Lat, 1e-9)
	assert.InDelta(t, 139.7454, coords.Lon, 1e-9)
	assert.Equal(t, 1, calls)
}

func TestNominatimGeocoderUsesCache(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`[{"lat":"1.5","lon":"2.5"}]`))
	}))
	defer srv.Close()

	mem, err := cache.NewMemoryGeocodeCache(16)
	require.NoError(t, err)
	g := NewNominatimGeocoder(srv.URL, mem)

	for i := 0; i < 3; i++ {
		coords, err := g.Geocode(context.Background(), "Museum")
		require.NoError(t, err)
		assert.Equal(t, 1.5, coords.Lat)
	}
	assert.Equal(t, 1, calls, "repeat lookups must be served from cache")
}

func TestNominatimGeocoderNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, nil)
	_, err := g.Geocode(context.Background(), "Nowhere In Particular")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no geocode results")
}

func TestNominatimGeocoderEmptyAddress(t *testing.T) {
	g := NewNominatimGeocoder("", nil)
	_, err := g.Geocode(context.Background(), "   ")
	assert.Error(t, err)
}
