// Package pipeline orchestrates one report run: fetch, compute, classify,
// enrich, render, deliver. The flow is strictly linear and stateless; a
// failed run is recovered by re-invoking the job.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"coverage-report/internal/coverage"
	"coverage-report/internal/delivery"
	"coverage-report/internal/domain"
	"coverage-report/internal/insight"
	"coverage-report/internal/reporting"
	"coverage-report/internal/storage"
)

// DefaultLookbackDays is the warehouse fetch window when none is configured.
const DefaultLookbackDays = 14

// ErrNothingDelivered is returned when the report was computed but no
// destination accepted it. The data exists only inside this process, so
// the run did not do its job; re-running is safe.
var ErrNothingDelivered = errors.New("report computed but no destination accepted it")

// ErrEmptyWindow is returned when lag trimming leaves no complete days.
var ErrEmptyWindow = errors.New("no complete days in window after lag trimming")

// HeadlineFetcher supplies optional market headlines.
type HeadlineFetcher interface {
	Headlines(ctx context.Context) ([]string, error)
}

// MetricsRecorder is the slice of observability.Metrics the runner needs.
// Split out so the runner works without a metrics registry in tests and
// fixture runs.
type MetricsRecorder interface {
	ObserveStage(stage string, d time.Duration)
	RecordRows(n int)
	RecordRunResult(result string)
	RecordNarrativeFailure()
	RecordNewsFailure()
	RecordChartFailure()
	RecordDelivery(destination string, err error)
}

// Runner executes the report pipeline.
type Runner struct {
	store        storage.MetricStore
	dispatcher   *delivery.Dispatcher
	lookbackDays int
	logger       zerolog.Logger

	narrator insight.Narrator // optional
	news     HeadlineFetcher  // optional
	metrics  MetricsRecorder  // optional

	now func() time.Time
}

// Result carries everything a run produced.
type Result struct {
	Report   *domain.CoverageReport
	Rendered *reporting.RenderedReport
	Outcomes []delivery.Outcome
}

// Delivered reports whether at least one destination accepted the report.
func (r *Result) Delivered() bool {
	for _, o := range r.Outcomes {
		if o.Err == nil {
			return true
		}
	}
	return false
}

// NewRunner creates a pipeline runner. A non-positive lookback falls back
// to DefaultLookbackDays.
func NewRunner(store storage.MetricStore, dispatcher *delivery.Dispatcher, lookbackDays int, logger zerolog.Logger) *Runner {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &Runner{
		store:        store,
		dispatcher:   dispatcher,
		lookbackDays: lookbackDays,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithNarrator enables narrative generation.
func (r *Runner) WithNarrator(n insight.Narrator) *Runner {
	r.narrator = n
	return r
}

// WithNews enables market-news enrichment.
func (r *Runner) WithNews(f HeadlineFetcher) *Runner {
	r.news = f
	return r
}

// WithMetrics enables Prometheus instrumentation.
func (r *Runner) WithMetrics(m MetricsRecorder) *Runner {
	r.metrics = m
	return r
}

// WithClock sets a custom clock function for deterministic output.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// Run executes one report pass. A returned error means the run failed:
// either the source data could not be fetched or nothing was delivered.
// Narrative, news, and chart failures degrade the output instead.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	now := r.now()
	runID := uuid.NewString()
	logger := r.logger.With().Str("run_id", runID).Logger()

	// Fetch
	windowStart := now.AddDate(0, 0, -r.lookbackDays)
	stageStart := time.Now()
	daily, err := r.store.FetchDailyMetrics(ctx, windowStart, now)
	if err != nil {
		r.recordRun("failed")
		return nil, fmt.Errorf("fetch daily metrics: %w", err)
	}
	r.observeStage("fetch", stageStart)
	r.recordRows(len(daily))
	logger.Info().Int("rows", len(daily)).Msg("fetched warehouse window")

	// Compute
	trimmed := coverage.TrimLag(daily, now)
	if len(trimmed) == 0 {
		r.recordRun("failed")
		return nil, ErrEmptyWindow
	}
	summaries := coverage.Summarize(trimmed)

	report := &domain.CoverageReport{
		RunID:       runID,
		GeneratedAt: now,
		WindowStart: trimmed[0].Date,
		WindowEnd:   trimmed[len(trimmed)-1].Date,
		Daily:       trimmed,
		Summaries:   summaries,
	}
	event := logger.Info().
		Str("status", string(report.OverallStatus())).
		Time("window_start", report.WindowStart).
		Time("window_end", report.WindowEnd)
	if tx := report.Summary(domain.DimensionTransactions); tx != nil && tx.HasData {
		event = event.Float64("transactions_ratio", tx.Ratio)
	}
	if rev := report.Summary(domain.DimensionRevenue); rev != nil && rev.HasData {
		event = event.Float64("revenue_ratio", rev.Ratio)
	}
	event.Msg("coverage computed")

	// Enrich: market news, then narrative. Both optional, both non-fatal.
	if r.news != nil {
		headlines, err := r.news.Headlines(ctx)
		if err != nil {
			r.recordNewsFailure()
			logger.Warn().Err(err).Msg("news fetch failed, continuing without market context")
		} else {
			report.NewsContext = headlines
		}
	}

	if r.narrator != nil {
		stageStart = time.Now()
		narrative, err := r.narrator.Narrate(ctx, report)
		if err != nil {
			r.recordNarrativeFailure()
			logger.Warn().Err(err).Msg("narrative generation failed, shipping metrics-only report")
		} else {
			report.Narrative = narrative
		}
		r.observeStage("narrate", stageStart)
	}

	// Render
	rendered, err := reporting.Render(report)
	if err != nil {
		r.recordChartFailure()
		logger.Warn().Err(err).Msg("chart rendering failed, shipping report without chart")
	}

	// Deliver
	stageStart = time.Now()
	outcomes := r.dispatcher.Dispatch(ctx, rendered)
	r.observeStage("deliver", stageStart)
	for _, o := range outcomes {
		r.recordDelivery(o.Destination, o.Err)
	}

	result := &Result{Report: report, Rendered: rendered, Outcomes: outcomes}
	if !result.Delivered() {
		r.recordRun("nothing_delivered")
		return result, ErrNothingDelivered
	}

	r.recordRun("success")
	return result, nil
}

func (r *Runner) observeStage(stage string, since time.Time) {
	if r.metrics != nil {
		r.metrics.ObserveStage(stage, time.Since(since))
	}
}

func (r *Runner) recordRows(n int) {
	if r.metrics != nil {
		r.metrics.RecordRows(n)
	}
}

func (r *Runner) recordRun(result string) {
	if r.metrics != nil {
		r.metrics.RecordRunResult(result)
	}
}

func (r *Runner) recordNarrativeFailure() {
	if r.metrics != nil {
		r.metrics.RecordNarrativeFailure()
	}
}

func (r *Runner) recordNewsFailure() {
	if r.metrics != nil {
		r.metrics.RecordNewsFailure()
	}
}

func (r *Runner) recordChartFailure() {
	if r.metrics != nil {
		r.metrics.RecordChartFailure()
	}
}

func (r *Runner) recordDelivery(destination string, err error) {
	if r.metrics != nil {
		r.metrics.RecordDelivery(destination, err)
	}
}
