package render

import (
	"tour-planner-service/internal/domain"
)

// GeoJSON route geometry for map-rendering collaborators: numbered
// point features for each stop in visiting order and one LineString
// tracing the route.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties,omitempty"`
}

type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// RouteGeometry builds the feature collection for a visiting order.
// Coordinates follow the GeoJSON [lon, lat] convention.
func RouteGeometry(tour domain.Tour, coords []domain.Coordinates, names []string) FeatureCollection {
	features := make([]Feature, 0, len(tour)+1)
	line := make([][]float64, 0, len(tour))

	for order, idx := range tour {
		point := []float64{coords[idx].Lon, coords[idx].Lat}
		line = append(line, point)

		props := map[string]any{"order": order + 1}
		if idx < len(names) && names[idx] != "" {
			props["name"] = names[idx]
		}
		features = append(features, Feature{
			Type:       "Feature",
			Geometry:   Geometry{Type: "Point", Coordinates: point},
			Properties: props,
		})
	}

	if len(line) >= 2 {
		features = append(features, Feature{
			Type:     "Feature",
			Geometry: Geometry{Type: "LineString", Coordinates: line},
		})
	}

	return FeatureCollection{Type: "FeatureCollection", Features: features}
}
