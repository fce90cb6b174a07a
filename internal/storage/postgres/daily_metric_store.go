package postgres

import (
	"context"
	"fmt"
	"time"

	"coverage-report/internal/domain"
	"coverage-report/internal/storage"
)

// DailyMetricStore implements storage.MetricStore for marts hosted in
// Postgres rather than ClickHouse. Same row shape, same aggregation.
type DailyMetricStore struct {
	pool  *Pool
	table string
}

// NewDailyMetricStore creates a DailyMetricStore over the given mart table.
func NewDailyMetricStore(pool *Pool, table string) (*DailyMetricStore, error) {
	if err := storage.ValidateTable(table); err != nil {
		return nil, err
	}
	return &DailyMetricStore{pool: pool, table: table}, nil
}

// Compile-time interface check.
var _ storage.MetricStore = (*DailyMetricStore)(nil)

// FetchDailyMetrics returns per-day aggregates within [start, end], date ASC.
func (s *DailyMetricStore) FetchDailyMetrics(ctx context.Context, start, end time.Time) ([]*domain.DailyMetric, error) {
	query := fmt.Sprintf(`
		SELECT
			order_date,
			COUNT(DISTINCT source_transaction_id) AS source_transactions,
			COUNT(DISTINCT NULLIF(tracked_transaction_id, '')) AS tracked_transactions,
			COALESCE(SUM(source_revenue), 0)::float8 AS source_revenue,
			COALESCE(SUM(tracked_revenue), 0)::float8 AS tracked_revenue
		FROM %s
		WHERE order_date BETWEEN $1 AND $2
		GROUP BY order_date
		ORDER BY order_date ASC
	`, s.table)

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query daily metrics: %w", err)
	}
	defer rows.Close()

	var metrics []*domain.DailyMetric
	for rows.Next() {
		var m domain.DailyMetric
		if err := rows.Scan(&m.Date, &m.SourceTransactions, &m.TrackedTransactions, &m.SourceRevenue, &m.TrackedRevenue); err != nil {
			return nil, fmt.Errorf("scan daily metric: %w", err)
		}
		metrics = append(metrics, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily metrics: %w", err)
	}

	if len(metrics) == 0 {
		return nil, storage.ErrNoMetrics
	}
	return metrics, nil
}
