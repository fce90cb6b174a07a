// Package observability provides Prometheus metrics for the report job.
// The job is a short-lived batch process, so metrics are held in a
// dedicated registry and optionally pushed to a Pushgateway at the end of
// the run.
package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds all Prometheus metrics for the report job.
type Metrics struct {
	registry *prometheus.Registry

	// Pipeline metrics
	RunsTotal     *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec

	// Data metrics
	RowsFetched prometheus.Gauge

	// Degradation metrics
	NarrativeFailures prometheus.Counter
	NewsFailures      prometheus.Counter
	ChartFailures     prometheus.Counter

	// Delivery metrics
	DeliveryOutcomes *prometheus.CounterVec
}

// NewMetrics creates the metric set in a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coverage_report_runs_total",
			Help: "Report runs by terminal result.",
		}, []string{"result"}),

		StageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "coverage_report_stage_duration_seconds",
			Help:    "Duration of each pipeline stage.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"stage"}),

		RowsFetched: factory.NewGauge(prometheus.GaugeOpts{
			Name: "coverage_report_warehouse_rows",
			Help: "Daily rows returned by the warehouse query.",
		}),

		NarrativeFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "coverage_report_narrative_failures_total",
			Help: "Narrative generation failures (report degraded to metrics-only).",
		}),

		NewsFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "coverage_report_news_failures_total",
			Help: "Market news fetch failures.",
		}),

		ChartFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "coverage_report_chart_failures_total",
			Help: "Chart rendering failures (report shipped without chart).",
		}),

		DeliveryOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coverage_report_deliveries_total",
			Help: "Delivery attempts by destination and status.",
		}, []string{"destination", "status"}),
	}
}

// ObserveStage records a stage duration.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordRows records the warehouse row count.
func (m *Metrics) RecordRows(n int) {
	m.RowsFetched.Set(float64(n))
}

// RecordRunResult counts a terminal run result.
func (m *Metrics) RecordRunResult(result string) {
	m.RunsTotal.WithLabelValues(result).Inc()
}

// RecordNarrativeFailure counts a narrative degradation.
func (m *Metrics) RecordNarrativeFailure() {
	m.NarrativeFailures.Inc()
}

// RecordNewsFailure counts a market-news fetch failure.
func (m *Metrics) RecordNewsFailure() {
	m.NewsFailures.Inc()
}

// RecordChartFailure counts a chart rendering failure.
func (m *Metrics) RecordChartFailure() {
	m.ChartFailures.Inc()
}

// RecordDelivery counts a delivery attempt by destination and status.
func (m *Metrics) RecordDelivery(destination string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DeliveryOutcomes.WithLabelValues(destination, status).Inc()
}

// Push sends the registry to a Pushgateway. The job exits right after a
// run, so pushing is the only way these metrics survive it.
func (m *Metrics) Push(ctx context.Context, gatewayURL string) error {
	err := push.New(gatewayURL, "coverage_report").
		Gatherer(m.registry).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
