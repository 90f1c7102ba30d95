package ports

import (
	"context"

	"tour-planner-service/internal/domain"
)

// Contract for resolving a free-form address into coordinates.
// An address with no result is an error; the orchestrator aborts
// planning rather than guessing a location.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
