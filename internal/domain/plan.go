package domain

// Criterion names the optimization objective that selected a tour.
type Criterion string

const (
	CriterionTime     Criterion = "time"
	CriterionDistance Criterion = "distance"
	// CriterionCustom marks a caller-supplied visiting order that was
	// scheduled without tour optimization (mixed-mode legs).
	CriterionCustom Criterion = "custom"
)

// ItineraryPlan is the planner's sole output contract: the visiting
// order, its timed stops, the objective that chose it, and the total
// travel time. It is immutable planning data and contains no side effects.
type ItineraryPlan struct {
	Tour                 Tour
	Stops                []ScheduledStop
	Criterion            Criterion
	TotalDurationSeconds float64
}
