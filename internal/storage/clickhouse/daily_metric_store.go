package clickhouse

import (
	"context"
	"fmt"
	"time"

	"coverage-report/internal/domain"
	"coverage-report/internal/storage"
)

// DailyMetricStore implements storage.MetricStore against a ClickHouse
// coverage mart. Rows in the mart are order-level; aggregation to per-day
// figures happens in the warehouse.
type DailyMetricStore struct {
	conn  *Conn
	table string
}

// NewDailyMetricStore creates a DailyMetricStore over the given mart table.
func NewDailyMetricStore(conn *Conn, table string) (*DailyMetricStore, error) {
	if err := storage.ValidateTable(table); err != nil {
		return nil, err
	}
	return &DailyMetricStore{conn: conn, table: table}, nil
}

// Compile-time interface check.
var _ storage.MetricStore = (*DailyMetricStore)(nil)

// FetchDailyMetrics returns per-day aggregates within [start, end], date ASC.
// Untracked orders carry an empty tracked_transaction_id; nullIf keeps them
// out of the distinct count.
func (s *DailyMetricStore) FetchDailyMetrics(ctx context.Context, start, end time.Time) ([]*domain.DailyMetric, error) {
	query := fmt.Sprintf(`
		SELECT
			order_date,
			COUNT(DISTINCT source_transaction_id) AS source_transactions,
			COUNT(DISTINCT nullIf(tracked_transaction_id, '')) AS tracked_transactions,
			SUM(source_revenue) AS source_revenue,
			SUM(tracked_revenue) AS tracked_revenue
		FROM %s
		WHERE order_date BETWEEN ? AND ?
		GROUP BY order_date
		ORDER BY order_date ASC
	`, s.table)

	rows, err := s.conn.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query daily metrics: %w", err)
	}
	defer rows.Close()

	var metrics []*domain.DailyMetric
	for rows.Next() {
		var (
			m                   domain.DailyMetric
			sourceTx, trackedTx uint64
		)
		if err := rows.Scan(&m.Date, &sourceTx, &trackedTx, &m.SourceRevenue, &m.TrackedRevenue); err != nil {
			return nil, fmt.Errorf("scan daily metric: %w", err)
		}
		m.SourceTransactions = int64(sourceTx)
		m.TrackedTransactions = int64(trackedTx)
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
