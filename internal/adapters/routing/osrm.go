package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/obs"
	"tour-planner-service/internal/ports"
)

// OSRMProvider implements MatrixProvider using the OSRM table service.
//
// It coordinates:
//   - Full NxN distance/duration matrix fetches per travel mode
//   - Single-leg lookups backed by a persistent leg cache
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use. It reports failures to the
// caller instead of estimating; wrap it in a FallbackProvider to get
// great-circle estimates when OSRM is down.
type OSRMProvider struct {
	session  *http.Client
	baseURL  string
	legCache ports.LegCache
}

// NewOSRMProvider builds a provider against the given OSRM base URL
// (the public demo server when empty). legCache may be nil to disable
// leg caching.
func NewOSRMProvider(baseURL string, legCache ports.LegCache) *OSRMProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://router.project-osrm.org"
	}
	return &OSRMProvider{
		session:  &http.Client{Timeout: 30 * time.Second},
		baseURL:  strings.TrimRight(baseURL, "/"),
		legCache: legCache,
	}
}

type tableResponse struct {
	Code      string       `json:"code"`
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// Matrices fetches the full pairwise cost tables for one travel mode.
// Distances are kilometers, durations seconds. Pairs OSRM cannot route
// carry the domain.Unreachable sentinel.
func (o *OSRMProvider) Matrices(
	ctx context.Context,
	coords []domain.Coordinates,
	mode domain.TravelMode,
) (_ domain.CostMatrix, _ domain.CostMatrix, err error) {
	defer obs.Time(ctx, "osrm.Matrices")(&err)

	n := len(coords)
	if n == 0 {
		return domain.CostMatrix{}, domain.CostMatrix{}, nil
	}

	locs := make([]string, 0, n)
	for _, c := range coords {
		locs = append(locs, c.LonLat())
	}
	endpoint := fmt.Sprintf(
		"%s/table/v1/%s/%s?annotations=distance,duration",
		o.baseURL, mode.Profile(), strings.Join(locs, ";"),
	)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, endpoint)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("osrm table request: %w", err)
	}
	defer resp.Body.Close()

	var tr tableResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, nil, fmt.Errorf("decode osrm table response: %w", err)
	}
	if tr.Code != "Ok" {
		return nil, nil, fmt.Errorf("osrm table returned code %q", tr.Code)
	}
	if len(tr.Distances) != n || len(tr.Durations) != n {
		return nil, nil, fmt.Errorf(
			"osrm table row count mismatch: distances=%d durations=%d locations=%d",
			len(tr.Distances), len(tr.Durations), n,
		)
	}

	dist := make([][]float64, n)
	dur := make([][]float64, n)
	for i := 0; i < n; i++ {
		if len(tr.Distances[i]) != n || len(tr.Durations[i]) != n {
			return nil, nil, fmt.Errorf("osrm table column count mismatch in row %d", i)
		}
		dist[i] = make([]float64, n)
		dur[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			// OSRM returns meters and seconds, with null for
			// unroutable pairs.
			if d := tr.Distances[i][j]; d != nil {
				dist[i][j] = *d / 1000.0
			} else {
				dist[i][j] = domain.Unreachable
			}
			if t := tr.Durations[i][j]; t != nil {
				dur[i][j] = *t
			} else {
				dur[i][j] = domain.Unreachable
			}
		}
	}

	return domain.CostMatrix(dist), domain.CostMatrix(dur), nil
}

// Leg returns one leg's cost, consulting the persistent leg cache
// before issuing a two-point table call.
func (o *OSRMProvider) Leg(
	ctx context.Context,
	from, to domain.Coordinates,
	mode domain.TravelMode,
) (ports.LegEstimate, error) {
	if o.legCache != nil {
		leg, ok, err := o.legCache.Get(ctx, from, to, mode)
		if err != nil {
			return ports.LegEstimate{}, fmt.Errorf("osrm leg cache: %w", err)
		}
		if ok {
			return leg, nil
		}
	}

	dist, dur, err := o.Matrices(ctx, []domain.Coordinates{from, to}, mode)
	if err != nil {
		return ports.LegEstimate{}, err
	}
	leg := ports.LegEstimate{
		DistanceKm:      dist.At(0, 1),
		DurationSeconds: dur.At(0, 1),
	}

	if o.legCache != nil {
		if err := o.legCache.Put(ctx, from, to, mode, leg); err != nil {
			log.Printf("leg cache write failed: %v", err)
		}
	}

	return leg, nil
}

var _ ports.LegProvider = (*OSRMProvider)(nil)
