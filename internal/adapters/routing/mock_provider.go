package routing

import (
	"context"
	"fmt"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// MockProvider serves fixed matrices and legs for tests.
type MockProvider struct {
	Dist domain.CostMatrix
	Dur  domain.CostMatrix
	Legs map[string]ports.LegEstimate
	Err  error
}

// MockLegKey builds the lookup key used by MockProvider.Legs.
func MockLegKey(from, to domain.Coordinates, mode domain.TravelMode) string {
	return from.CacheKey() + "|" + to.CacheKey() + "|" + string(mode)
}

func (m *MockProvider) Matrices(
	_ context.Context,
	coords []domain.Coordinates,
	_ domain.TravelMode,
) (domain.CostMatrix, domain.CostMatrix, error) {
	if m.Err != nil {
		return nil, nil, m.Err
	}
	if len(coords) != m.Dist.Len() {
		return nil, nil, fmt.Errorf("mock provider holds %d locations, asked for %d", m.Dist.Len(), len(coords))
	}
	return m.Dist, m.Dur, nil
}

func (m *MockProvider) Leg(
	_ context.Context,
	from, to domain.Coordinates,
	mode domain.TravelMode,
) (ports.LegEstimate, error) {
	if m.Err != nil {
		return ports.LegEstimate{}, m.Err
	}
	leg, ok := m.Legs[MockLegKey(from, to, mode)]
	if !ok {
		return ports.LegEstimate{}, fmt.Errorf("missing mock leg %q -> %q mode=%s", from.CacheKey(), to.CacheKey(), mode)
	}
	return leg, nil
}

var _ ports.LegProvider = (*MockProvider)(nil)
