package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-planner-service/internal/adapters/routing"
	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/domain"
)

type stubGeocoder map[string]domain.Coordinates

func (g stubGeocoder) Geocode(_ context.Context, address string) (domain.Coordinates, error) {
	c, ok := g[address]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: no results", address)
	}
	return c, nil
}

type stubNotifier struct {
	recipient string
	message   string
	err       error
}

func (n *stubNotifier) Push(_ context.Context, recipient, message string) error {
	if n.err != nil {
		return n.err
	}
	n.recipient = recipient
	n.message = message
	return nil
}

func planFixture() (stubGeocoder, *routing.MockProvider, dto.PlanRequest) {
	geocoder := stubGeocoder{
		"1 Hub St":     {Lon: 139.70, Lat: 35.65},
		"2 Museum Ave": {Lon: 139.71, Lat: 35.66},
		"3 Gallery Rd": {Lon: 139.72, Lat: 35.67},
	}

	provider := &routing.MockProvider{
		Dist: domain.CostMatrix{
			{0, 2, 1},
			{2, 0, 1.5},
			{1, 1.5, 0},
		},
		Dur: domain.CostMatrix{
			{0, 100, 120},
			{100, 0, 50},
			{120, 50, 0},
		},
	}

	req := dto.PlanRequest{
		Places: []dto.PlaceRequest{
			{Name: "Hub", Address: "1 Hub St"},
			{Name: "Museum", Address: "2 Museum Ave", StayMinutes: 45, OpenFrom: "09:00", OpenTo: "18:00", Mode: "drive"},
			{Name: "Gallery", Address: "3 Gallery Rd", StayMinutes: 30, Mode: "drive"},
		},
	}
	return geocoder, provider, req
}

func postPlan(t *testing.T, h *PlanHandler, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	h.Plan(w, r)
	return w
}

func TestPlanHandler(t *testing.T) {
	geocoder, provider, req := planFixture()
	h := &PlanHandler{Geocoder: geocoder, Provider: provider}

	w := postPlan(t, h, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	require.Len(t, res.Stops, 3)
	assert.Equal(t, 1, res.Stops[0].Order)
	assert.Equal(t, "Hub", res.Stops[0].Name)
	assert.NotEmpty(t, res.Criterion)
	assert.Greater(t, res.TotalDurationSeconds, 0.0)
	assert.Contains(t, res.Itinerary, "Museum")
	require.NotNil(t, res.Route)
	// Point per stop plus the connecting line.
	assert.Len(t, res.Route.Features, 4)
	assert.False(t, res.Notified)
}

func TestPlanHandlerNotifies(t *testing.T) {
	geocoder, provider, req := planFixture()
	notifier := &stubNotifier{}
	h := &PlanHandler{Geocoder: geocoder, Provider: provider, Notifier: notifier}

	req.LineUserID = "U123"
	w := postPlan(t, h, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Notified)
	assert.Equal(t, "U123", notifier.recipient)
	assert.Equal(t, res.Itinerary, notifier.message)
}

func TestPlanHandlerNotifyFailureKeepsPlan(t *testing.T) {
	geocoder, provider, req := planFixture()
	notifier := &stubNotifier{err: fmt.Errorf("line: status 502")}
	h := &PlanHandler{Geocoder: geocoder, Provider: provider, Notifier: notifier}

	req.LineUserID = "U123"
	w := postPlan(t, h, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Notified)
}

func TestPlanHandlerMethodNotAllowed(t *testing.T) {
	h := &PlanHandler{}

	r := httptest.NewRequest(http.MethodGet, "/plans", nil)
	w := httptest.NewRecorder()
	h.Plan(w, r)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestPlanHandlerRejectsBadBodies(t *testing.T) {
	geocoder, provider, valid := planFixture()
	h := &PlanHandler{Geocoder: geocoder, Provider: provider}

	t.Run("invalid json", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader([]byte("{")))
		w := httptest.NewRecorder()
		h.Plan(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader([]byte(`{"venues":[]}`)))
		w := httptest.NewRecorder()
		h.Plan(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no places", func(t *testing.T) {
		w := postPlan(t, h, dto.PlanRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("blank address", func(t *testing.T) {
		bad := valid
		bad.Places = append([]dto.PlaceRequest(nil), valid.Places...)
		bad.Places[1].Address = "   "
		w := postPlan(t, h, bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("half open window", func(t *testing.T) {
		bad := valid
		bad.Places = append([]dto.PlaceRequest(nil), valid.Places...)
		bad.Places[1].OpenTo = ""
		w := postPlan(t, h, bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed window", func(t *testing.T) {
		bad := valid
		bad.Places = append([]dto.PlaceRequest(nil), valid.Places...)
		bad.Places[1].OpenFrom = "25:00"
		w := postPlan(t, h, bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown mode", func(t *testing.T) {
		bad := valid
		bad.Places = append([]dto.PlaceRequest(nil), valid.Places...)
		bad.Places[2].Mode = "teleport"
		w := postPlan(t, h, bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		pct := 150.0
		bad := valid
		bad.ThresholdPct = &pct
		w := postPlan(t, h, bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPlanHandlerUnreachableLocation(t *testing.T) {
	geocoder, provider, req := planFixture()
	provider.Dur = domain.CostMatrix{
		{0, domain.Unreachable, domain.Unreachable},
		{domain.Unreachable, 0, domain.Unreachable},
		{domain.Unreachable, domain.Unreachable, 0},
	}
	provider.Dist = provider.Dur
	h := &PlanHandler{Geocoder: geocoder, Provider: provider}

	w := postPlan(t, h, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
