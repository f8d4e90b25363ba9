package availability

import (
	"context"
	"log/slog"
	"time"

	"rooftop-wizard/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresChecker runs the conflict query against the marketplace bookings
// table (read-only). A rooftop is unavailable when any non-cancelled booking
// overlaps the requested [start, end) window.
type PostgresChecker struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresChecker(pool *pgxpool.Pool, logger *slog.Logger) *PostgresChecker {
	return &PostgresChecker{
		pool:   pool,
		logger: logger,
	}
}

const conflictQuery = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE rooftop_id = $1
      AND status <> 'CANCELLED'
      AND start_time < $3
      AND end_time > $2
)`

func (c *PostgresChecker) Check(ctx context.Context, rooftopID string, startAt, endAt time.Time) (bool, error) {
	var conflict bool
	err := c.pool.QueryRow(ctx, conflictQuery, rooftopID, startAt, endAt).Scan(&conflict)
	if err != nil {
		return false, infra.WrapStoreErr(c.logger, infra.KindStoreFailure, "availability query failed", err)
	}
	return !conflict, nil
}
