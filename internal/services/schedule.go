package services

import (
	"fmt"
	"math"
	"time"

	"tour-planner-service/internal/domain"
)

// ProjectSchedule walks a visiting order and produces timestamped,
// status-annotated stops.
//
// The walk starts at departAt, which also fixes the calendar date that
// opening windows are compared against. For every stop: arrival is the
// running clock, the window status is advisory only, departure is
// always arrival plus the stop's stay, and the clock then advances by
// the duration-matrix leg to the next stop. The projection is pure:
// same inputs, same schedule.
//
// stayMinutes and windows must cover every location the matrix covers.
// An unreachable leg on the tour fails with domain.ErrNoFeasibleTour.
func ProjectSchedule(
	tour domain.Tour,
	durations domain.CostMatrix,
	stayMinutes []int,
	windows []*domain.OpeningWindow,
	departAt time.Time,
) ([]domain.ScheduledStop, error) {
	n := durations.Len()
	if len(stayMinutes) != n {
		return nil, fmt.Errorf("project schedule: %d stay durations for %d locations: %w", len(stayMinutes), n, domain.ErrDimensionMismatch)
	}
	if len(windows) != n {
		return nil, fmt.Errorf("project schedule: %d opening windows for %d locations: %w", len(windows), n, domain.ErrDimensionMismatch)
	}
	for _, idx := range tour {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("project schedule: tour index %d with %d locations: %w", idx, n, domain.ErrDimensionMismatch)
		}
	}

	stops := make([]domain.ScheduledStop, 0, len(tour))
	current := departAt

	for pos, idx := range tour {
		arrive := current
		depart := arrive.Add(time.Duration(stayMinutes[idx]) * time.Minute)

		stops = append(stops, domain.ScheduledStop{
			LocationIndex: idx,
			ArriveAt:      arrive,
			DepartAt:      depart,
			Status:        windows[idx].Status(arrive),
		})

		if pos+1 < len(tour) {
			next := tour[pos+1]
			leg := durations.At(idx, next)
			if math.IsInf(leg, 1) {
				return nil, fmt.Errorf("project schedule: leg %d -> %d: %w", idx, next, domain.ErrNoFeasibleTour)
			}
			current = depart.Add(time.Duration(leg * float64(time.Second)))
		}
	}

	return stops, nil
}

// ProjectLegs is the mixed-mode variant of ProjectSchedule: the
// visiting order is the caller-supplied order 0..len(legSeconds), and
// the travel time of each leg was computed independently (each leg may
// use a different cost profile). Stop semantics are identical to
// ProjectSchedule given the same per-leg durations.
func ProjectLegs(
	legSeconds []float64,
	stayMinutes []int,
	windows []*domain.OpeningWindow,
	departAt time.Time,
) ([]domain.ScheduledStop, error) {
	n := len(legSeconds) + 1
	if len(stayMinutes) != n {
		return nil, fmt.Errorf("project legs: %d stay durations for %d locations: %w", len(stayMinutes), n, domain.ErrDimensionMismatch)
	}
	if len(windows) != n {
		return nil, fmt.Errorf("project legs: %d opening windows for %d locations: %w", len(windows), n, domain.ErrDimensionMismatch)
	}

	stops := make([]domain.ScheduledStop, 0, n)
	current := departAt

	for idx := 0; idx < n; idx++ {
		arrive := current
		depart := arrive.Add(time.Duration(stayMinutes[idx]) * time.Minute)

		stops = append(stops, domain.ScheduledStop{
			LocationIndex: idx,
			ArriveAt:      arrive,
			DepartAt:      depart,
			Status:        windows[idx].Status(arrive),
		})

		if idx+1 < n {
			leg := legSeconds[idx]
			if math.IsInf(leg, 1) {
				return nil, fmt.Errorf("project legs: leg %d -> %d: %w", idx, idx+1, domain.ErrNoFeasibleTour)
			}
			current = depart.Add(time.Duration(leg * float64(time.Second)))
		}
	}

	return stops, nil
}
