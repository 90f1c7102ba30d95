package dto

import (
	"time"

	"tour-planner-service/internal/adapters/render"
)

type PlaceRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	StayMinutes int    `json:"stay_minutes"`
	OpenFrom    string `json:"open_from,omitempty"`
	OpenTo      string `json:"open_to,omitempty"`
	// Mode is the travel mode for the leg arriving at this place. The
	// first place's mode is ignored.
	Mode string `json:"mode,omitempty"`
}

type PlanRequest struct {
	Places       []PlaceRequest `json:"places"`
	DepartAt     *time.Time     `json:"depart_at"`
	ThresholdPct *float64       `json:"threshold_pct"`
	LineUserID   string         `json:"line_user_id,omitempty"`
}

type PlanStopResponse struct {
	Order    int       `json:"order"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	ArriveAt time.Time `json:"arrive_at"`
	DepartAt time.Time `json:"depart_at"`
	Status   string    `json:"status"`
}

type PlanResponse struct {
	Criterion            string                    `json:"criterion"`
	TotalDurationSeconds float64                   `json:"total_duration_seconds"`
	Stops                []PlanStopResponse        `json:"stops"`
	Itinerary            string                    `json:"itinerary"`
	Route                *render.FeatureCollection `json:"route,omitempty"`
	Notified             bool                      `json:"notified,omitempty"`
}
