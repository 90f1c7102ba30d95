package cache

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, InitSqliteSchema(db))
	return db
}

func TestSqliteGeocodeCacheRoundTrip(t *testing.T) {
	c := NewSqliteGeocodeCache(newTestDB(t))
	ctx := context.Background()

	stored := map[string]domain.Coordinates{
		"Museum":  {Lon: 139.77, Lat: 35.71},
		"Gallery": {Lon: 139.70, Lat: 35.66},
	}
	require.NoError(t, c.PutMany(ctx, stored))

	got, err := c.GetMany(ctx, []string{"Museum", "Gallery", "Unknown"})
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	// Re-putting an address replaces its coordinates.
	require.NoError(t, c.PutMany(ctx, map[string]domain.Coordinates{
		"Museum": {Lon: 1, Lat: 2},
	}))
	got, err = c.GetMany(ctx, []string{"Museum"})
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lon: 1, Lat: 2}, got["Museum"])
}

func TestSqliteGeocodeCacheEmptyInputs(t *testing.T) {
	c := NewSqliteGeocodeCache(newTestDB(t))
	ctx := context.Background()

	got, err := c.GetMany(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = c.GetMany(ctx, []string{"", "   "})
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, c.PutMany(ctx, nil))
	assert.Error(t, c.PutMany(ctx, map[string]domain.Coordinates{"": {}}))
}

func TestSqliteLegCacheRoundTrip(t *testing.T) {
	c := NewSqliteLegCache(newTestDB(t))
	ctx := context.Background()

	from := domain.Coordinates{Lat: 35.68, Lon: 139.76}
	to := domain.Coordinates{Lat: 35.71, Lon: 139.77}

	_, ok, err := c.Get(ctx, from, to, domain.ModeWalk)
	require.NoError(t, err)
	assert.False(t, ok)

	leg := ports.LegEstimate{DistanceKm: 3.4, DurationSeconds: 2448}
	require.NoError(t, c.Put(ctx, from, to, domain.ModeWalk, leg))

	got, ok, err := c.Get(ctx, from, to, domain.ModeWalk)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, leg, got)

	// Mode is part of the key: a drive lookup for the same pair misses.
	_, ok, err = c.Get(ctx, from, to, domain.ModeDrive)
	require.NoError(t, err)
	assert.False(t, ok)
}
