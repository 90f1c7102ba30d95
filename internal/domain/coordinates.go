package domain

import "fmt"

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// LonLat renders the coordinate as "lon,lat" for routing-engine URLs.
func (c Coordinates) LonLat() string {
	return fmt.Sprintf("%f,%f", c.Lon, c.Lat)
}

// CacheKey renders the coordinate at fixed precision (~0.1m) so that
// equal points map to equal cache rows.
func (c Coordinates) CacheKey() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}
