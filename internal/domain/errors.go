package domain

import "errors"

// Sentinel errors shared by the planning core. Callers match them with
// errors.Is after unwrapping service-level context.
var (
	// ErrMatrixNotSquare reports a cost matrix whose rows do not all
	// have the same length as the row count.
	ErrMatrixNotSquare = errors.New("cost matrix must be square")

	// ErrNegativeCost reports a finite negative matrix entry.
	ErrNegativeCost = errors.New("cost matrix entries must be non-negative")

	// ErrDimensionMismatch reports inputs sized for different location counts.
	ErrDimensionMismatch = errors.New("inputs disagree on location count")

	// ErrStartOutOfRange reports a tour start index outside 0..N-1.
	ErrStartOutOfRange = errors.New("start index out of range")

	// ErrNoFeasibleTour reports that a required leg is unreachable
	// (its matrix entry is the +Inf sentinel).
	ErrNoFeasibleTour = errors.New("no feasible tour: required leg is unreachable")

	// ErrInvalidWindowSpec reports an opening window that failed to parse.
	ErrInvalidWindowSpec = errors.New("invalid opening window spec")
)
