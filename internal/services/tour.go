package services

import (
	"fmt"
	"math"

	"tour-planner-service/internal/domain"
)

// Construct a visiting order using the greedy nearest-neighbor heuristic.
//
// The algorithm minimizes immediate travel cost at each step. It does
// not attempt global optimization; the design prioritizes determinism
// and simplicity over optimality. Ties are broken by the lowest
// candidate index, which keeps the output reproducible across runs.
//
// An empty matrix yields an empty tour. If at some step every
// remaining candidate is unreachable, the function fails with
// domain.ErrNoFeasibleTour instead of treating the sentinel as a cost.
func NearestNeighborTour(m domain.CostMatrix, start int) (domain.Tour, error) {
	n := m.Len()
	if n == 0 {
		return domain.Tour{}, nil
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("nearest neighbor: start=%d with %d locations: %w", start, n, domain.ErrStartOutOfRange)
	}

	visited := make([]bool, n)
	visited[start] = true

	tour := make(domain.Tour, 1, n)
	tour[0] = start
	current := start

	for len(tour) < n {
		best := -1
		bestCost := math.Inf(1)

		// Scan unvisited indices in ascending order with a strict
		// comparison so the first candidate wins ties.
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if c := m.At(current, j); c < bestCost {
				bestCost = c
				best = j
			}
		}

		if best < 0 {
			return nil, fmt.Errorf("nearest neighbor: no reachable candidate from index %d: %w", current, domain.ErrNoFeasibleTour)
		}

		visited[best] = true
		tour = append(tour, best)
		current = best
	}

	return tour, nil
}

// Improve a tour with 2-opt local search over open-path length (there
// is no closing edge back to the start).
//
// The scan uses a first-improvement strategy: the first segment
// reversal that strictly shortens the tour is accepted and the scan
// restarts from the top. It terminates when a full pass finds no
// improving move, so the result is a local optimum and applying the
// function again returns it unchanged. The start element is never
// moved and the input tour is never mutated.
//
// Tours of four or fewer stops admit no candidate pair under the loop
// bounds and adjacency exclusion, so they are returned as-is.
func TwoOptImprove(tour domain.Tour, m domain.CostMatrix) domain.Tour {
	best := tour.Clone()
	bestLength := m.TourLength(best)
	n := len(best)

	improved := true
	for improved {
		improved = false
		for i := 1; i < n-2 && !improved; i++ {
			for j := i + 1; j < n-1; j++ {
				if j-i == 1 {
					// Reversing a single-element segment is a no-op.
					continue
				}
				candidate := reverseSegment(best, i, j)
				if length := m.TourLength(candidate); length < bestLength {
					best = candidate
					bestLength = length
					improved = true
					break
				}
			}
		}
	}

	return best
}

// reverseSegment returns a copy of the tour with positions i..j-1 reversed.
func reverseSegment(tour domain.Tour, i, j int) domain.Tour {
	out := tour.Clone()
	for lo, hi := i, j-1; lo < hi; lo, hi = lo+1, hi-1 {
		out[lo], out[hi] = out[hi], out[lo]
	}
	return out
}
