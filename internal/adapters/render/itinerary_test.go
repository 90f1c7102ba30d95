package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tour-planner-service/internal/domain"
)

func TestFormatItinerary(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	stops := []domain.ScheduledStop{
		{LocationIndex: 0, ArriveAt: day.Add(9 * time.Hour), DepartAt: day.Add(9 * time.Hour), Status: domain.StatusOnTime},
		{LocationIndex: 2, ArriveAt: day.Add(9*time.Hour + 20*time.Minute), DepartAt: day.Add(10 * time.Hour), Status: domain.StatusTooEarly},
		{LocationIndex: 1, ArriveAt: day.Add(11 * time.Hour), DepartAt: day.Add(11*time.Hour + 30*time.Minute), Status: domain.StatusOnTime},
	}
	names := []string{"Hub", "Museum", "Gallery"}

	text := FormatItinerary(stops, names, 5400)

	assert.Contains(t, text, "1. Hub: arrive 09:00, depart 09:00")
	assert.Contains(t, text, "2. Gallery: arrive 09:20, depart 10:00 (arrives before opening)")
	assert.Contains(t, text, "3. Museum: arrive 11:00, depart 11:30")
	assert.Contains(t, text, "Total travel time: 1h 30m")
	assert.NotContains(t, text, "on_time")
}

func TestFormatItineraryFallbackName(t *testing.T) {
	stops := []domain.ScheduledStop{
		{LocationIndex: 4, ArriveAt: time.Now(), DepartAt: time.Now()},
	}
	text := FormatItinerary(stops, []string{"Hub"}, 0)
	assert.Contains(t, text, "Stop 5")
}

func TestRouteGeometry(t *testing.T) {
	coords := []domain.Coordinates{
		{Lat: 35.68, Lon: 139.76},
		{Lat: 35.71, Lon: 139.77},
		{Lat: 35.66, Lon: 139.70},
	}
	fc := RouteGeometry(domain.Tour{0, 2, 1}, coords, []string{"Hub", "Museum", "Gallery"})

	assert.Equal(t, "FeatureCollection", fc.Type)
	// Three points plus the connecting line.
	assert.Len(t, fc.Features, 4)
	assert.Equal(t, "Point", fc.Features[0].Geometry.Type)
	assert.Equal(t, 1, fc.Features[0].Properties["order"])
	assert.Equal(t, "Gallery", fc.Features[1].Properties["name"])
	assert.Equal(t, "LineString", fc.Features[3].Geometry.Type)

	line := fc.Features[3].Geometry.Coordinates.([][]float64)
	assert.Equal(t, []float64{139.76, 35.68}, line[0])
	assert.Equal(t, []float64{139.70, 35.66}, line[1])
}

func TestRouteGeometrySingleStop(t *testing.T) {
	fc := RouteGeometry(domain.Tour{0}, []domain.Coordinates{{Lat: 1, Lon: 2}}, nil)
	// No LineString for a single stop.
	assert.Len(t, fc.Features, 1)
}
