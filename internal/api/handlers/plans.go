package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"tour-planner-service/internal/adapters/render"
	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
	"tour-planner-service/internal/services"
)

const (
	defaultThresholdPct = 10
	maxPlaces           = 25
)

type PlanHandler struct {
	Geocoder ports.Geocoder
	Provider ports.MatrixProvider
	Notifier ports.Notifier
}

// Plan orchestrates geocoding, tour construction, and schedule
// projection for one trip request.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	svcReq, names, err := buildTripRequest(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	plan, coords, err := services.PlanTrip(r.Context(), *svcReq, h.Geocoder, h.Provider)
	if err != nil {
		if errors.Is(err, domain.ErrNoFeasibleTour) {
			writeError(w, r, http.StatusUnprocessableEntity, "no feasible tour: some locations are unreachable")
			return
		}
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	itinerary := render.FormatItinerary(plan.Stops, names, plan.TotalDurationSeconds)
	route := render.RouteGeometry(plan.Tour, coords, names)

	res := dto.PlanResponse{
		Criterion:            string(plan.Criterion),
		TotalDurationSeconds: plan.TotalDurationSeconds,
		Stops:                make([]dto.PlanStopResponse, 0, len(plan.Stops)),
		Itinerary:            itinerary,
		Route:                &route,
	}
	for order, s := range plan.Stops {
		res.Stops = append(res.Stops, dto.PlanStopResponse{
			Order:    order + 1,
			Name:     names[s.LocationIndex],
			Address:  svcReq.Addresses[s.LocationIndex],
			ArriveAt: s.ArriveAt,
			DepartAt: s.DepartAt,
			Status:   string(s.Status),
		})
	}

	// Notification failures never fail the plan itself.
	if req.LineUserID != "" && h.Notifier != nil {
		if err := h.Notifier.Push(r.Context(), req.LineUserID, itinerary); err != nil {
			log.Printf("push itinerary failed: %v", err)
		} else {
			res.Notified = true
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

// buildTripRequest validates the wire request and maps it onto the
// planning service's input. The returned names align with location
// indices.
func buildTripRequest(req dto.PlanRequest) (*services.PlanTripRequest, []string, error) {
	n := len(req.Places)
	if n == 0 {
		return nil, nil, fmt.Errorf("places is required")
	}
	if n > maxPlaces {
		return nil, nil, fmt.Errorf("at most %d places per plan", maxPlaces)
	}

	svcReq := services.PlanTripRequest{
		Addresses:   make([]string, 0, n),
		StayMinutes: make([]int, 0, n),
		Windows:     make([]*domain.OpeningWindow, 0, n),
		DepartAt:    time.Now(),
	}
	names := make([]string, 0, n)

	for i, p := range req.Places {
		addr := strings.TrimSpace(p.Address)
		if addr == "" {
			return nil, nil, fmt.Errorf("places[%d]: address is required", i)
		}
		if p.StayMinutes < 0 {
			return nil, nil, fmt.Errorf("places[%d]: stay_minutes must not be negative", i)
		}

		window, err := parseWindow(p.OpenFrom, p.OpenTo)
		if err != nil {
			return nil, nil, fmt.Errorf("places[%d]: %w", i, err)
		}

		if i > 0 {
			mode := domain.TravelMode(p.Mode)
			if p.Mode == "" {
				mode = domain.ModeDrive
			}
			if !mode.Valid() {
				return nil, nil, fmt.Errorf("places[%d]: unknown mode %q", i, p.Mode)
			}
			svcReq.Modes = append(svcReq.Modes, mode)
		}

		svcReq.Addresses = append(svcReq.Addresses, addr)
		svcReq.StayMinutes = append(svcReq.StayMinutes, p.StayMinutes)
		svcReq.Windows = append(svcReq.Windows, window)
		names = append(names, strings.TrimSpace(p.Name))
	}

	if req.DepartAt != nil {
		svcReq.DepartAt = *req.DepartAt
	}

	svcReq.ThresholdPct = defaultThresholdPct
	if req.ThresholdPct != nil {
		if *req.ThresholdPct < 0 || *req.ThresholdPct > 100 {
			return nil, nil, fmt.Errorf("threshold_pct must be between 0 and 100")
		}
		svcReq.ThresholdPct = *req.ThresholdPct
	}

	return &svcReq, names, nil
}

func parseWindow(openFrom, openTo string) (*domain.OpeningWindow, error) {
	if openFrom == "" && openTo == "" {
		return nil, nil
	}
	if openFrom == "" || openTo == "" {
		return nil, fmt.Errorf("open_from and open_to must be given together")
	}
	return domain.ParseOpeningWindow(openFrom, openTo)
}
