package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"coverage-report/internal/storage/migrations"
)

// setupTestDB starts a Postgres container, applies the embedded mart DDL,
// and returns a connected pool. The returned cleanup must be called after
// tests complete.
func setupTestDB(t *testing.T) (*Pool, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	pool, err := NewPool(ctx, dsn)
	require.NoError(t, err, "failed to create pool")

	require.NoError(t, migrations.RunPostgresMigrations(ctx, pool), "failed to apply migrations")

	cleanup := func() {
		pool.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return pool, cleanup
}

// insertOrder adds one order-level row to the coverage mart. An empty
// trackedID marks an order the tracker missed.
func insertOrder(t *testing.T, pool *Pool, date time.Time, sourceID, trackedID string, sourceRevenue, trackedRevenue float64) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `
		INSERT INTO order_coverage (order_date, source_transaction_id, tracked_transaction_id, source_revenue, tracked_revenue)
		VALUES ($1, $2, $3, $4, $5)
	`, date, sourceID, trackedID, sourceRevenue, trackedRevenue)
	require.NoError(t, err, "failed to insert order row")
}
