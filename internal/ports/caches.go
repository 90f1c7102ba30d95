package ports

import (
	"context"

	"tour-planner-service/internal/domain"
)

// Port: a caller-owned cache mapping normalized addresses to
// coordinates. There is no hidden process-wide memoization; the
// geocoding adapter receives one of these explicitly.
type GeocodeCache interface {
	// Fetch cached coordinates for the given addresses.
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	// Store address -> coordinate mappings in the cache.
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}

// Port: a cache for single-leg travel estimates keyed by coordinate
// pair and travel mode. Used on the mixed-mode path where every leg is
// looked up independently.
type LegCache interface {
	Get(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) (LegEstimate, bool, error)
	Put(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode, leg LegEstimate) error
}
