package services

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"tour-planner-service/internal/domain"
)

// TourSelection is the outcome of weighing a duration-optimized tour
// against a distance-optimized one: the chosen tour, the criterion
// that chose it, and the chosen tour's total travel time.
type TourSelection struct {
	Tour                 domain.Tour
	Criterion            domain.Criterion
	TotalDurationSeconds float64
}

// SelectTour builds and improves two candidate tours over the same
// locations, one per cost criterion, and picks one by a threshold rule.
//
// When the distance-optimized tour costs at most thresholdPct percent
// more travel time than the duration-optimized one, the shorter route
// wins (preferable for fuel or toll reasons at negligible time cost);
// otherwise the faster route wins. A degenerate time-optimized tour
// with zero total duration is selected unconditionally.
//
// The two builds share only read-only matrices and run concurrently.
func SelectTour(
	ctx context.Context,
	distances domain.CostMatrix,
	durations domain.CostMatrix,
	start int,
	thresholdPct float64,
) (TourSelection, error) {
	if distances.Len() != durations.Len() {
		return TourSelection{}, fmt.Errorf(
			"select tour: distance matrix covers %d locations, duration matrix %d: %w",
			distances.Len(), durations.Len(), domain.ErrDimensionMismatch,
		)
	}

	var timeTour, distTour domain.Tour

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := NearestNeighborTour(durations, start)
		if err != nil {
			return fmt.Errorf("build time tour: %w", err)
		}
		timeTour = TwoOptImprove(t, durations)
		return nil
	})
	g.Go(func() error {
		t, err := NearestNeighborTour(distances, start)
		if err != nil {
			return fmt.Errorf("build distance tour: %w", err)
		}
		distTour = TwoOptImprove(t, distances)
		return nil
	})
	if err := g.Wait(); err != nil {
		return TourSelection{}, fmt.Errorf("select tour: %w", err)
	}

	// Both candidates are compared on travel time.
	timeTotal := durations.TourLength(timeTour)
	if timeTotal == 0 {
		return TourSelection{
			Tour:      timeTour,
			Criterion: domain.CriterionTime,
		}, nil
	}

	distTotal := durations.TourLength(distTour)
	diffPct := math.Abs(timeTotal-distTotal) / timeTotal * 100

	if diffPct <= thresholdPct {
		return TourSelection{
			Tour:                 distTour,
			Criterion:            domain.CriterionDistance,
			TotalDurationSeconds: distTotal,
		}, nil
	}

	return TourSelection{
		Tour:                 timeTour,
		Criterion:            domain.CriterionTime,
		TotalDurationSeconds: timeTotal,
	}, nil
}
