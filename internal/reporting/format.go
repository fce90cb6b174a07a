// Package reporting renders a computed CoverageReport into its delivery
// surfaces: a compact chat message, an extended markdown document, and a
// coverage chart. Rendering is pure presentation; no business logic.
package reporting

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"coverage-report/internal/domain"
)

// NoDataMarker is printed wherever a ratio could not be computed.
const NoDataMarker = "no data"

// FormatPercent renders a ratio as a percentage with one decimal: "82.3%".
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// FormatCount renders an integer count with thousands separators: "1,503".
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatMoney renders revenue abbreviated with one decimal: "$40.8K",
// "$1.2M". Values under a thousand stay plain dollars.
func FormatMoney(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("$%.1fK", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// FormatRatio renders a summary's coverage ratio, or the no-data marker.
func FormatRatio(s domain.CoverageSummary) string {
	if !s.HasData {
		return NoDataMarker
	}
	return FormatPercent(s.Ratio)
}

// FormatDelta renders the trend annotation: "(↑ 3.5pp)". Empty when no
// prior period was available.
func FormatDelta(s domain.CoverageSummary) string {
	if !s.HasDelta {
		return ""
	}
	return fmt.Sprintf("(%s %.1fpp)", s.Direction, math.Abs(s.Delta))
}

// formatAmount renders a dimension total in its native presentation:
// counts for transactions, abbreviated dollars for revenue.
func formatAmount(dim domain.Dimension, v float64) string {
	if dim == domain.DimensionRevenue {
		return FormatMoney(v)
	}
	return FormatCount(int64(math.Round(v)))
}
