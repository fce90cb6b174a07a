package clickhouse

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"coverage-report/internal/storage/migrations"
)

// setupTestDB starts a ClickHouse container, applies the embedded mart
// DDL, and returns a connection. The returned cleanup must be called when
// done.
func setupTestDB(t *testing.T) (*Conn, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "clickhouse/clickhouse-server:24.1-alpine",
		ExposedPorts: []string{"9000/tcp", "8123/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Application: Ready for connections").
				WithStartupTimeout(60*time.Second),
			wait.ForListeningPort("9000/tcp"),
		),
		Env: map[string]string{
			"CLICKHOUSE_DB":       "test",
			"CLICKHOUSE_USER":     "default",
			"CLICKHOUSE_PASSWORD": "",
		},
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start clickhouse container")

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "9000")
	require.NoError(t, err)

	conn, err := NewConn(ctx, fmt.Sprintf("clickhouse://%s:%s/test", host, port.Port()))
	require.NoError(t, err, "failed to connect to clickhouse")

	require.NoError(t, migrations.RunClickhouseMigrations(ctx, conn), "failed to apply migrations")

	cleanup := func() {
		conn.Close()
		_ = container.Terminate(ctx)
	}

	return conn, cleanup
}

// insertOrder adds one order-level row to the coverage mart. An empty
// trackedID marks an order the tracker missed.
func insertOrder(t *testing.T, conn *Conn, date time.Time, sourceID, trackedID string, sourceRevenue, trackedRevenue float64) {
	t.Helper()

	err := conn.Exec(context.Background(), `
		INSERT INTO order_coverage (order_date, source_transaction_id, tracked_transaction_id, source_revenue, tracked_revenue)
		VALUES (?, ?, ?, ?, ?)
	`, date, sourceID, trackedID, sourceRevenue, trackedRevenue)
	require.NoError(t, err, "failed to insert order row")
}
