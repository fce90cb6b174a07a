// Package coverage derives coverage ratios and trend classification from
// daily metrics. Everything here is pure computation over values already
// fetched from the warehouse.
package coverage

import (
	"sort"
	"time"

	"coverage-report/internal/domain"
)

// TrimLag drops days too recent for the tracker to have complete data.
// The tracker can lag up to 24 hours, so only days strictly before the
// date of (now - 24h) are kept. Input order does not matter; output is
// sorted by date ASC.
func TrimLag(daily []*domain.DailyMetric, now time.Time) []*domain.DailyMetric {
	cutoff := now.Add(-24 * time.Hour)
	cutoffDay := cutoff.Format("2006-01-02")

	var kept []*domain.DailyMetric
	for _, m := range daily {
		if m.Date.Format("2006-01-02") < cutoffDay {
			kept = append(kept, m)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Date.Before(kept[j].Date)
	})
	return kept
}

// Summarize computes one CoverageSummary per dimension from a lag-trimmed,
// date-ascending window. The window is split into a prior half and a
// current half; each half is pooled (summed numerators over summed
// denominators) so low-volume days don't skew the ratio the way averaged
// per-day ratios would.
func Summarize(daily []*domain.DailyMetric) []domain.CoverageSummary {
	half := len(daily) / 2
	prior := daily[:half]
	current := daily[half:]

	summaries := make([]domain.CoverageSummary, 0, len(domain.Dimensions))
	for _, dim := range domain.Dimensions {
		s := domain.CoverageSummary{Dimension: dim}

		s.SourceTotal, s.TrackedTotal = pool(current, dim)
		if s.SourceTotal > 0 {
			s.Ratio = s.TrackedTotal / s.SourceTotal
			s.HasData = true
		}

		priorSource, priorTracked := pool(prior, dim)
		if s.HasData && priorSource > 0 {
			priorRatio := priorTracked / priorSource
			s.Delta = (s.Ratio - priorRatio) * 100
			s.HasDelta = true
		}

		s.Status = Classify(s.Ratio, s.HasData)
		s.Direction = Trend(s.Delta, s.HasDelta)
		summaries = append(summaries, s)
	}
	return summaries
}

// pool sums the numerator and denominator of a dimension across days.
func pool(daily []*domain.DailyMetric, dim domain.Dimension) (source, tracked float64) {
	for _, m := range daily {
		switch dim {
		case domain.DimensionTransactions:
			source += float64(m.SourceTransactions)
			tracked += float64(m.TrackedTransactions)
		case domain.DimensionRevenue:
			source += m.SourceRevenue
			tracked += m.TrackedRevenue
		}
	}
	return source, tracked
}
