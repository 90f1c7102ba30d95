package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-planner-service/internal/domain"
)

// selectFixture builds three-location matrices where the fastest order
// is 0-1-2 (150s total) and the shortest order is 0-2-1, whose travel
// time exceeds the fastest by a controllable percentage.
func selectFixture(t *testing.T, slowLegSeconds float64) (dist, dur domain.CostMatrix) {
	t.Helper()
	dur = mustMatrix(t, [][]float64{
		{0, 100, slowLegSeconds},
		{100, 0, 50},
		{slowLegSeconds, 50, 0},
	})
	dist = mustMatrix(t, [][]float64{
		{0, 2, 1},
		{2, 0, 1.5},
		{1, 1.5, 0},
	})
	return dist, dur
}

func TestSelectTourWithinThresholdPrefersDistance(t *testing.T) {
	// Shortest order costs 157.5s vs 150s, a 5% difference.
	dist, dur := selectFixture(t, 107.5)

	sel, err := SelectTour(context.Background(), dist, dur, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, domain.CriterionDistance, sel.Criterion)
	assert.Equal(t, domain.Tour{0, 2, 1}, sel.Tour)
	assert.InDelta(t, 157.5, sel.TotalDurationSeconds, 1e-9)
}

func TestSelectTourBeyondThresholdPrefersTime(t *testing.T) {
	// Shortest order costs 172.5s vs 150s, a 15% difference.
	dist, dur := selectFixture(t, 122.5)

	sel, err := SelectTour(context.Background(), dist, dur, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, domain.CriterionTime, sel.Criterion)
	assert.Equal(t, domain.Tour{0, 1, 2}, sel.Tour)
	assert.InDelta(t, 150, sel.TotalDurationSeconds, 1e-9)
}

func TestSelectTourThresholdBoundaryIsInclusive(t *testing.T) {
	// Exactly 10% difference still selects the shorter route.
	dist, dur := selectFixture(t, 115)

	sel, err := SelectTour(context.Background(), dist, dur, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.CriterionDistance, sel.Criterion)
}

func TestSelectTourZeroDurationDegenerate(t *testing.T) {
	zero := mustMatrix(t, [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	dist := mustMatrix(t, [][]float64{
		{0, 2, 1},
		{2, 0, 3},
		{1, 3, 0},
	})

	sel, err := SelectTour(context.Background(), dist, zero, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.CriterionTime, sel.Criterion)
	assert.Zero(t, sel.TotalDurationSeconds)
	assert.True(t, sel.Tour.IsPermutation(3))
}

func TestSelectTourDimensionMismatch(t *testing.T) {
	dist := mustMatrix(t, [][]float64{{0, 1}, {1, 0}})
	dur := mustMatrix(t, [][]float64{{0}})

	_, err := SelectTour(context.Background(), dist, dur, 0, 10)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}
