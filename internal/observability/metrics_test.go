package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDelivery_StatusLabel(t *testing.T) {
	m := NewMetrics()

	m.RecordDelivery("slack", nil)
	m.RecordDelivery("slack", errors.New("channel gone"))
	m.RecordDelivery("slack", errors.New("rate limited"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeliveryOutcomes.WithLabelValues("slack", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DeliveryOutcomes.WithLabelValues("slack", "error")))
}

func TestRecorders(t *testing.T) {
	m := NewMetrics()

	m.RecordRows(13)
	m.RecordRunResult("success")
	m.RecordNarrativeFailure()
	m.RecordNewsFailure()
	m.RecordChartFailure()
	m.ObserveStage("fetch", 250*time.Millisecond)

	assert.Equal(t, 13.0, testutil.ToFloat64(m.RowsFetched))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NarrativeFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NewsFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChartFailures))

	count := testutil.CollectAndCount(m.StageDuration)
	require.Equal(t, 1, count)
}
