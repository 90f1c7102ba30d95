package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FeasibilityStatus classifies an arrival against a stop's opening
// window. It is advisory: infeasible stops are still visited and
// still incur their stay duration.
type FeasibilityStatus string

const (
	StatusOnTime   FeasibilityStatus = "on_time"
	StatusTooEarly FeasibilityStatus = "too_early"
	StatusTooLate  FeasibilityStatus = "too_late"
)

// OpeningWindow is a daily time-of-day interval during which a stop is
// open, stored as minutes after midnight. A nil *OpeningWindow means
// the stop is unconstrained.
type OpeningWindow struct {
	OpenMinute  int
	CloseMinute int
}

// ParseOpeningWindow parses "HH:MM" open/close strings. Malformed
// input surfaces ErrInvalidWindowSpec instead of being silently
// treated as always-open.
func ParseOpeningWindow(open, close string) (*OpeningWindow, error) {
	o, err := parseMinuteOfDay(open)
	if err != nil {
		return nil, fmt.Errorf("open time %q: %w", open, err)
	}
	c, err := parseMinuteOfDay(close)
	if err != nil {
		return nil, fmt.Errorf("close time %q: %w", close, err)
	}
	return &OpeningWindow{OpenMinute: o, CloseMinute: c}, nil
}

func parseMinuteOfDay(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, ErrInvalidWindowSpec
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidWindowSpec
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrInvalidWindowSpec
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidWindowSpec
	}
	return h*60 + m, nil
}

// Status compares an arrival timestamp against the window anchored to
// the arrival's own calendar date. Day rollover is intentionally not
// handled; a schedule crossing midnight compares against the new day's
// window.
func (w *OpeningWindow) Status(arrival time.Time) FeasibilityStatus {
	if w == nil {
		return StatusOnTime
	}
	midnight := time.Date(arrival.Year(), arrival.Month(), arrival.Day(), 0, 0, 0, 0, arrival.Location())
	openAt := midnight.Add(time.Duration(w.OpenMinute) * time.Minute)
	closeAt := midnight.Add(time.Duration(w.CloseMinute) * time.Minute)
	switch {
	case arrival.Before(openAt):
		return StatusTooEarly
	case arrival.After(closeAt):
		return StatusTooLate
	default:
		return StatusOnTime
	}
}

// ScheduledStop is one timed position of a projected itinerary.
// DepartAt is always ArriveAt plus the stop's stay duration,
// regardless of Status.
type ScheduledStop struct {
	LocationIndex int
	ArriveAt      time.Time
	DepartAt      time.Time
	Status        FeasibilityStatus
}
