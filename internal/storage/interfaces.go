package storage

import (
	"context"
	"time"

	"coverage-report/internal/domain"
)

// MetricStore provides read access to the daily coverage mart.
type MetricStore interface {
	// FetchDailyMetrics returns per-day aggregates for order dates within
	// [start, end] (inclusive), ordered by date ASC.
	// Returns ErrNoMetrics if the window contains no rows.
	FetchDailyMetrics(ctx context.Context, start, end time.Time) ([]*domain.DailyMetric, error)
}
