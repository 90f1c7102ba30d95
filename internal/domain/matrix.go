package domain

import (
	"fmt"
	"math"
)

// Unreachable is the sentinel cost for a pair of locations with no
// route between them. Matrix producers use it in place of missing
// values; the planning heuristics must never pick an Unreachable edge
// while a finite alternative exists.
var Unreachable = math.Inf(1)

// CostMatrix is a square table of non-negative travel costs (distance
// or duration) between every ordered pair of location indices. The
// diagonal is conventionally zero and unused. The shipped heuristics
// do not exploit asymmetry even though the table may be asymmetric.
type CostMatrix [][]float64

// NewCostMatrix validates cells and returns them as a CostMatrix.
// The zero-location matrix is valid and yields empty tours downstream.
func NewCostMatrix(cells [][]float64) (CostMatrix, error) {
	n := len(cells)
	for i, row := range cells {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrMatrixNotSquare)
		}
		for j, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("entry (%d,%d) = %v: %w", i, j, c, ErrNegativeCost)
			}
		}
	}
	return CostMatrix(cells), nil
}

// Len returns the number of locations the matrix covers.
func (m CostMatrix) Len() int { return len(m) }

// At returns the cost of travelling from origin index i to destination index j.
func (m CostMatrix) At(i, j int) float64 { return m[i][j] }

// TourLength sums consecutive-edge costs along an open path (no
// closing edge back to the first element). Any unreachable leg makes
// the whole length +Inf.
func (m CostMatrix) TourLength(tour Tour) float64 {
	var total float64
	for i := 0; i+1 < len(tour); i++ {
		total += m[tour[i]][tour[i+1]]
	}
	return total
}
