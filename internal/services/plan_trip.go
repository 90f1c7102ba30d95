package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// Concurrency cap for external lookups (geocoding, per-leg matrices).
const lookupConcurrency = 5

type PlanTripRequest struct {
	// Addresses in input order; index 0 is the start location.
	Addresses []string
	// StayMinutes per location; the start conventionally stays 0 minutes.
	StayMinutes []int
	// Windows per location; nil entries are unconstrained.
	Windows []*domain.OpeningWindow
	// Modes per leg: Modes[k] covers the leg into location k+1.
	Modes []domain.TravelMode
	// DepartAt is the departure timestamp from the start location.
	DepartAt     time.Time
	ThresholdPct float64
}

func (r PlanTripRequest) validate() error {
	n := len(r.Addresses)
	if n == 0 {
		return fmt.Errorf("plan trip: at least one address is required")
	}
	for i, a := range r.Addresses {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("plan trip: address %d is empty", i)
		}
	}
	if len(r.StayMinutes) != n {
		return fmt.Errorf("plan trip: %d stay durations for %d addresses: %w", len(r.StayMinutes), n, domain.ErrDimensionMismatch)
	}
	for i, s := range r.StayMinutes {
		if s < 0 {
			return fmt.Errorf("plan trip: stay duration %d for address %d is negative", s, i)
		}
	}
	if len(r.Windows) != n {
		return fmt.Errorf("plan trip: %d opening windows for %d addresses: %w", len(r.Windows), n, domain.ErrDimensionMismatch)
	}
	if len(r.Modes) != n-1 {
		return fmt.Errorf("plan trip: %d travel modes for %d legs: %w", len(r.Modes), n-1, domain.ErrDimensionMismatch)
	}
	for i, m := range r.Modes {
		if !m.Valid() {
			return fmt.Errorf("plan trip: unknown travel mode %q for leg %d", m, i)
		}
	}
	return nil
}

// PlanTrip turns addresses plus per-stop constraints into a timed
// itinerary.
//
// All addresses are geocoded up front; any failure aborts the plan.
// When every leg shares one travel mode, the visiting order is
// optimized over full cost matrices and selected by threshold rule.
// Mixed-mode trips keep the caller's order and price each leg with its
// own profile.
//
// The returned coordinates echo the geocoded addresses in input order
// for rendering collaborators (map geometry).
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	geocoder ports.Geocoder,
	provider ports.MatrixProvider,
) (*domain.ItineraryPlan, []domain.Coordinates, error) {
	if err := req.validate(); err != nil {
		return nil, nil, err
	}

	coords, err := geocodeAll(ctx, geocoder, req.Addresses)
	if err != nil {
		return nil, nil, fmt.Errorf("plan trip: %w", err)
	}

	if singleLeg := len(req.Modes) == 0; singleLeg {
		// One address: nothing to route, the schedule is a single stop.
		stops, err := ProjectLegs(nil, req.StayMinutes, req.Windows, req.DepartAt)
		if err != nil {
			return nil, nil, fmt.Errorf("plan trip: %w", err)
		}
		return &domain.ItineraryPlan{
			Tour:      domain.Tour{0},
			Stops:     stops,
			Criterion: domain.CriterionTime,
		}, coords, nil
	}

	var plan *domain.ItineraryPlan
	if mode, ok := uniformMode(req.Modes); ok {
		plan, err = planOptimized(ctx, req, coords, mode, provider)
	} else {
		plan, err = planSequential(ctx, req, coords, provider)
	}
	if err != nil {
		return nil, nil, err
	}
	return plan, coords, nil
}

func geocodeAll(ctx context.Context, geocoder ports.Geocoder, addresses []string) ([]domain.Coordinates, error) {
	coords := make([]domain.Coordinates, len(addresses))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for i, addr := range addresses {
		i, addr := i, addr
		g.Go(func() error {
			c, err := geocoder.Geocode(ctx, addr)
			if err != nil {
				return fmt.Errorf("geocode %q: %w", addr, err)
			}
			coords[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return coords, nil
}

func uniformMode(modes []domain.TravelMode) (domain.TravelMode, bool) {
	for _, m := range modes[1:] {
		if m != modes[0] {
			return "", false
		}
	}
	return modes[0], true
}

// planOptimized fetches one matrix pair for the whole trip, picks a
// tour by the dual-criterion rule, and projects its schedule.
func planOptimized(
	ctx context.Context,
	req PlanTripRequest,
	coords []domain.Coordinates,
	mode domain.TravelMode,
	provider ports.MatrixProvider,
) (*domain.ItineraryPlan, error) {
	dist, dur, err := provider.Matrices(ctx, coords, mode)
	if err != nil {
		return nil, fmt.Errorf("plan trip: fetch %s matrices: %w", mode, err)
	}

	selection, err := SelectTour(ctx, dist, dur, 0, req.ThresholdPct)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	stops, err := ProjectSchedule(selection.Tour, dur, req.StayMinutes, req.Windows, req.DepartAt)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	return &domain.ItineraryPlan{
		Tour:                 selection.Tour,
		Stops:                stops,
		Criterion:            selection.Criterion,
		TotalDurationSeconds: selection.TotalDurationSeconds,
	}, nil
}

// planSequential keeps the caller-supplied visiting order and prices
// each leg with its own mode, fanning lookups out under a bounded
// limit since every leg is independent.
func planSequential(
	ctx context.Context,
	req PlanTripRequest,
	coords []domain.Coordinates,
	provider ports.MatrixProvider,
) (*domain.ItineraryPlan, error) {
	legs := make([]ports.LegEstimate, len(req.Modes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for k := range req.Modes {
		k := k
		g.Go(func() error {
			leg, err := fetchLeg(gctx, provider, coords[k], coords[k+1], req.Modes[k])
			if err != nil {
				return fmt.Errorf("leg %d -> %d: %w", k, k+1, err)
			}
			legs[k] = leg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	legSeconds := make([]float64, len(legs))
	var total float64
	for k, leg := range legs {
		legSeconds[k] = leg.DurationSeconds
		total += leg.DurationSeconds
	}

	stops, err := ProjectLegs(legSeconds, req.StayMinutes, req.Windows, req.DepartAt)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	tour := make(domain.Tour, len(coords))
	for i := range tour {
		tour[i] = i
	}

	return &domain.ItineraryPlan{
		Tour:                 tour,
		Stops:                stops,
		Criterion:            domain.CriterionCustom,
		TotalDurationSeconds: total,
	}, nil
}

// fetchLeg prefers single-leg lookups when the provider supports them
// and falls back to a two-point matrix otherwise.
func fetchLeg(
	ctx context.Context,
	provider ports.MatrixProvider,
	from, to domain.Coordinates,
	mode domain.TravelMode,
) (ports.LegEstimate, error) {
	if lp, ok := provider.(ports.LegProvider); ok {
		return lp.Leg(ctx, from, to, mode)
	}

	_, dur, err := provider.Matrices(ctx, []domain.Coordinates{from, to}, mode)
	if err != nil {
		return ports.LegEstimate{}, err
	}
	if dur.Len() != 2 {
		return ports.LegEstimate{}, fmt.Errorf("two-point matrix covers %d locations: %w", dur.Len(), domain.ErrDimensionMismatch)
	}
	return ports.LegEstimate{DurationSeconds: dur.At(0, 1)}, nil
}
