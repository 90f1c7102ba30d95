package routing

import (
	"context"
	"log"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// FallbackProvider tries a primary matrix provider and, when it fails,
// degrades to great-circle estimation instead of failing the plan.
// The degradation is explicit composition wired by the caller, not a
// hidden behavior of the primary provider.
type FallbackProvider struct {
	Primary  ports.MatrixProvider
	Estimate HaversineProvider
}

func NewFallbackProvider(primary ports.MatrixProvider) *FallbackProvider {
	return &FallbackProvider{Primary: primary}
}

func (f *FallbackProvider) Matrices(
	ctx context.Context,
	coords []domain.Coordinates,
	mode domain.TravelMode,
) (domain.CostMatrix, domain.CostMatrix, error) {
	dist, dur, err := f.Primary.Matrices(ctx, coords, mode)
	if err == nil {
		return dist, dur, nil
	}
	if ctx.Err() != nil {
		return nil, nil, err
	}
	log.Printf("matrix provider failed, estimating from great-circle distance: %v", err)
	return f.Estimate.Matrices(ctx, coords, mode)
}

func (f *FallbackProvider) Leg(
	ctx context.Context,
	from, to domain.Coordinates,
	mode domain.TravelMode,
) (ports.LegEstimate, error) {
	if lp, ok := f.Primary.(ports.LegProvider); ok {
		leg, err := lp.Leg(ctx, from, to, mode)
		if err == nil {
			return leg, nil
		}
		if ctx.Err() != nil {
			return ports.LegEstimate{}, err
		}
		log.Printf("leg provider failed, estimating from great-circle distance: %v", err)
	}
	return f.Estimate.Leg(ctx, from, to, mode)
}

var _ ports.LegProvider = (*FallbackProvider)(nil)
