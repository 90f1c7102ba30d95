package ports

import (
	"context"

	"tour-planner-service/internal/domain"
)

// Distance and travel duration for a single leg.
type LegEstimate struct {
	DistanceKm      float64
	DurationSeconds float64
}

// Contract for retrieving pairwise travel costs for a coordinate list.
// Distances are kilometers, durations seconds; unreachable pairs carry
// the domain.Unreachable sentinel rather than failing the whole call.
type MatrixProvider interface {
	// Matrices returns the full NxN distance and duration tables for
	// one travel mode.
	Matrices(ctx context.Context, coords []domain.Coordinates, mode domain.TravelMode) (dist, dur domain.CostMatrix, err error)
}

// Optional extension of MatrixProvider for single-leg lookups, used by
// mixed-mode trips where each leg may use a different profile.
type LegProvider interface {
	MatrixProvider
	// Leg returns travel cost from one origin to one destination.
	Leg(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) (LegEstimate, error)
}
