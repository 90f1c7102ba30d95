package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// SQLite backed cache for single-leg travel estimates, keyed by
// fixed-precision coordinate pair and travel mode. Used by the
// mixed-mode planning path where every leg is looked up on its own.
type SqliteLegCache struct {
	DB *sql.DB
}

func NewSqliteLegCache(db *sql.DB) *SqliteLegCache {
	return &SqliteLegCache{DB: db}
}

// Fetch one cached leg estimate; the second return reports a hit.
func (s *SqliteLegCache) Get(
	ctx context.Context,
	from, to domain.Coordinates,
	mode domain.TravelMode,
) (ports.LegEstimate, bool, error) {
	if s.DB == nil {
		return ports.LegEstimate{}, false, errors.New("leg cache: db is nil")
	}

	q := `
	SELECT distance_km, duration_seconds
    FROM leg_cache
    WHERE origin = ? AND destination = ? AND mode = ?;
	`

	var leg ports.LegEstimate
	err := s.DB.QueryRowContext(ctx, q, from.CacheKey(), to.CacheKey(), string(mode)).
		Scan(&leg.DistanceKm, &leg.DurationSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.LegEstimate{}, false, nil
	}
	if err != nil {
		return ports.LegEstimate{}, false, fmt.Errorf("get leg cache: query leg_cache table: %w", err)
	}

	return leg, true, nil
}

// Store one leg estimate, replacing any previous row for the key.
func (s *SqliteLegCache) Put(
	ctx context.Context,
	from, to domain.Coordinates,
	mode domain.TravelMode,
	leg ports.LegEstimate,
) error {
	if s.DB == nil {
		return errors.New("leg cache: db is nil")
	}

	q := `
	INSERT OR REPLACE INTO leg_cache (
        origin,
        destination,
        mode,
        distance_km,
        duration_seconds
    )
    VALUES (?, ?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, from.CacheKey(), to.CacheKey(), string(mode), leg.DistanceKm, leg.DurationSeconds); err != nil {
		return fmt.Errorf("insert leg cache %s -> %s mode=%s: %w", from.CacheKey(), to.CacheKey(), mode, err)
	}

	return nil
}

var _ ports.LegCache = (*SqliteLegCache)(nil)
