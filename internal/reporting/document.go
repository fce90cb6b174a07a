package reporting

import (
	"fmt"
	"strings"

	"coverage-report/internal/domain"
)

// Document renders the extended markdown layout: headings, status table,
// per-day metric tables, narrative, and market context.
func Document(r *domain.CoverageReport) string {
	var sb strings.Builder

	status := r.OverallStatus()
	sb.WriteString(fmt.Sprintf("# Tracking Coverage Report — %s\n\n", r.WindowEnd.Format("Jan 02, 2006")))
	sb.WriteString(fmt.Sprintf("%s **%s**\n\n", status.Emoji(), Headline(status)))
	sb.WriteString(fmt.Sprintf("Period: %s to %s | Generated: %s | Run: %s\n\n",
		r.WindowStart.Format("2006-01-02"), r.WindowEnd.Format("2006-01-02"),
		r.GeneratedAt.Format("2006-01-02 15:04 MST"), r.RunID))

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Dimension | Source | Tracked | Coverage | Trend | Status |\n")
	sb.WriteString("|-----------|--------|---------|----------|-------|--------|\n")
	for _, s := range r.Summaries {
		trend := FormatDelta(s)
		if trend == "" {
			trend = "—"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s %s |\n",
			s.Dimension.Label(),
			formatAmount(s.Dimension, s.SourceTotal),
			formatAmount(s.Dimension, s.TrackedTotal),
			FormatRatio(s), trend, s.Status.Emoji(), s.Status))
	}
	sb.WriteString("\n")

	// Narrative
	if r.Narrative != "" {
		sb.WriteString("## Analysis\n\n")
		sb.WriteString(strings.TrimSpace(r.Narrative))
		sb.WriteString("\n\n")
	}

	// Per-day tables
	sb.WriteString("## Daily Transactions\n\n")
	sb.WriteString(dailyTable(r.Daily, domain.DimensionTransactions))
	sb.WriteString("\n## Daily Revenue\n\n")
	sb.WriteString(dailyTable(r.Daily, domain.DimensionRevenue))

	// Market context
	if len(r.NewsContext) > 0 {
		sb.WriteString("\n## Market Context\n\n")
		for _, headline := range r.NewsContext {
			sb.WriteString(fmt.Sprintf("- %s\n", headline))
		}
	}

	return sb.String()
}

// DocumentName returns the document file name for the report's window.
func DocumentName(r *domain.CoverageReport) string {
	return fmt.Sprintf("coverage-report-%s.md", r.WindowEnd.Format("2006-01-02"))
}

// ChartName returns the chart file name for the report's window.
func ChartName(r *domain.CoverageReport) string {
	return fmt.Sprintf("coverage-chart-%s.png", r.WindowEnd.Format("2006-01-02"))
}

// dailyTable renders one dimension's per-day markdown table, newest first.
func dailyTable(daily []*domain.DailyMetric, dim domain.Dimension) string {
	var sb strings.Builder
	sb.WriteString("| Date | Source | Tracked | Coverage |\n")
	sb.WriteString("|------|--------|---------|----------|\n")
	for i := len(daily) - 1; i >= 0; i-- {
		m := daily[i]
		var source, tracked float64
		switch dim {
		case domain.DimensionTransactions:
			source, tracked = float64(m.SourceTransactions), float64(m.TrackedTransactions)
		case domain.DimensionRevenue:
			source, tracked = m.SourceRevenue, m.TrackedRevenue
		}
		rate := NoDataMarker
		if source > 0 {
			rate = FormatPercent(tracked / source)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			m.Date.Format("2006-01-02"),
			formatAmount(dim, source),
			formatAmount(dim, tracked),
			rate))
	}
	return sb.String()
}
