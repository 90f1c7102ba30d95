package domain

// TravelMode selects the routing profile used for a leg or a whole trip.
type TravelMode string

const (
	ModeWalk    TravelMode = "walk"
	ModeDrive   TravelMode = "drive"
	ModeTransit TravelMode = "transit"
)

// Profile maps a mode to its routing-engine profile name. Transit has
// no dedicated profile and falls back to walking.
func (m TravelMode) Profile() string {
	if m == ModeDrive {
		return "driving"
	}
	return "foot"
}

// FallbackSpeedKmh is the assumed constant speed used when the routing
// engine is unavailable and legs are estimated from great-circle distance.
func (m TravelMode) FallbackSpeedKmh() float64 {
	if m == ModeDrive {
		return 40.0
	}
	return 5.0
}

// Valid reports whether m is a known travel mode.
func (m TravelMode) Valid() bool {
	switch m {
	case ModeWalk, ModeDrive, ModeTransit:
		return true
	}
	return false
}
