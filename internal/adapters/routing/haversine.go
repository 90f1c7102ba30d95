package routing

import (
	"context"
	"math"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

const earthRadiusKm = 6371.0

// HaversineKm computes the great-circle distance between two
// coordinates in kilometers.
func HaversineKm(a, b domain.Coordinates) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// HaversineProvider estimates travel costs from great-circle distance
// at a fixed assumed speed per travel mode. It never fails and is used
// as the fallback when the routing engine is unavailable.
type HaversineProvider struct{}

func (HaversineProvider) Matrices(
	_ context.Context,
	coords []domain.Coordinates,
	mode domain.TravelMode,
) (domain.CostMatrix, domain.CostMatrix, error) {
	n := len(coords)
	speed := mode.FallbackSpeedKmh()

	dist := make([][]float64, n)
	dur := make([][]float64, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		dur[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			km := HaversineKm(coords[i], coords[j])
			dist[i][j] = km
			dur[i][j] = km / speed * 3600.0
		}
	}
	return domain.CostMatrix(dist), domain.CostMatrix(dur), nil
}

func (HaversineProvider) Leg(
	_ context.Context,
	from, to domain.Coordinates,
	mode domain.TravelMode,
) (ports.LegEstimate, error) {
	km := HaversineKm(from, to)
	return ports.LegEstimate{
		DistanceKm:      km,
		DurationSeconds: km / mode.FallbackSpeedKmh() * 3600.0,
	}, nil
}

var _ ports.LegProvider = HaversineProvider{}
