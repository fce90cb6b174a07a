package domain

import "time"

// Status classifies a coverage ratio against fixed threshold bands.
type Status string

const (
	StatusCritical Status = "CRITICAL"
	StatusWarning  Status = "WARNING"
	StatusGood     Status = "GOOD"
)

// Emoji returns the chat indicator for a status.
func (s Status) Emoji() string {
	switch s {
	case StatusCritical:
		return "🚨"
	case StatusWarning:
		return "⚠️"
	case StatusGood:
		return "✅"
	}
	return "❔"
}

// severity orders statuses worst-first so reports can surface the worst one.
func (s Status) severity() int {
	switch s {
	case StatusCritical:
		return 0
	case StatusWarning:
		return 1
	case StatusGood:
		return 2
	}
	return 3
}

// Direction is the trend arrow shown next to a coverage delta.
type Direction string

const (
	DirectionUp   Direction = "↑"
	DirectionDown Direction = "↓"
	DirectionFlat Direction = "→"
)

// CoverageSummary is the pooled coverage for one dimension over the
// current half of the lookback window, compared against the prior half.
type CoverageSummary struct {
	Dimension Dimension

	// Pooled totals for the current half of the window.
	SourceTotal  float64
	TrackedTotal float64

	// Ratio = TrackedTotal / SourceTotal. Meaningless when HasData is
	// false (the current half had no source activity).
	Ratio   float64
	HasData bool

	// Delta is current minus prior ratio in percentage points. HasDelta
	// is false when the prior half had no source activity.
	Delta    float64
	HasDelta bool

	Status    Status
	Direction Direction
}

// CoverageReport is the transient per-run artifact: everything computed for
// one scheduled invocation. It is never persisted by this system.
type CoverageReport struct {
	RunID       string
	GeneratedAt time.Time

	// Inclusive date range actually covered after lag trimming.
	WindowStart time.Time
	WindowEnd   time.Time

	Daily     []*DailyMetric
	Summaries []CoverageSummary

	// Narrative is the model-generated trend text; empty when the
	// narrative service failed or was not configured.
	Narrative string

	// NewsContext holds optional market headlines passed to the
	// narrative service and echoed in the document layout.
	NewsContext []string
}

// OverallStatus returns the worst status across all summaries.
// Reports with no summaries classify as WARNING.
func (r *CoverageReport) OverallStatus() Status {
	worst := Status("")
	for _, s := range r.Summaries {
		if worst == "" || s.Status.severity() < worst.severity() {
			worst = s.Status
		}
	}
	if worst == "" {
		return StatusWarning
	}
	return worst
}

// Summary returns the summary for a dimension, or nil if absent.
func (r *CoverageReport) Summary(dim Dimension) *CoverageSummary {
	for i := range r.Summaries {
		if r.Summaries[i].Dimension == dim {
			return &r.Summaries[i]
		}
	}
	return nil
}
