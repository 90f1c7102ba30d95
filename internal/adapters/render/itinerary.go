package render

import (
	"fmt"
	"strings"

	"tour-planner-service/internal/domain"
)

// FormatItinerary renders a plain-text itinerary for display or
// messaging delivery: one numbered line per stop with arrival and
// departure clock times, plus a travel-time summary.
func FormatItinerary(stops []domain.ScheduledStop, names []string, totalDurationSeconds float64) string {
	lines := make([]string, 0, len(stops)+2)
	lines = append(lines, "Your itinerary:\n")

	for i, stop := range stops {
		name := fmt.Sprintf("Stop %d", stop.LocationIndex+1)
		if stop.LocationIndex < len(names) && strings.TrimSpace(names[stop.LocationIndex]) != "" {
			name = names[stop.LocationIndex]
		}

		line := fmt.Sprintf(
			"%d. %s: arrive %s, depart %s",
			i+1, name,
			stop.ArriveAt.Format("15:04"),
			stop.DepartAt.Format("15:04"),
		)
		if note := statusNote(stop.Status); note != "" {
			line += " (" + note + ")"
		}
		lines = append(lines, line)
	}

	totalH := int(totalDurationSeconds) / 3600
	totalM := (int(totalDurationSeconds) % 3600) / 60
	lines = append(lines, fmt.Sprintf("\nTotal travel time: %dh %dm", totalH, totalM))

	return strings.Join(lines, "\n")
}

func statusNote(s domain.FeasibilityStatus) string {
	switch s {
	case domain.StatusTooEarly:
		return "arrives before opening"
	case domain.StatusTooLate:
		return "arrives after closing"
	default:
		return ""
	}
}
