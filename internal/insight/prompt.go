package insight

import (
	"fmt"
	"math"
	"strings"

	"coverage-report/internal/domain"
	"coverage-report/internal/reporting"
)

// BuildPrompt assembles the analysis request sent to the model: business
// context, per-day data tables, pooled summaries, optional market
// headlines, and strict output instructions.
func BuildPrompt(r *domain.CoverageReport) string {
	var sb strings.Builder

	sb.WriteString("I need you to analyze our ecommerce tracking coverage and write the trend portion of a standardized daily report. ")
	sb.WriteString("The data compares our commerce system of record (source of truth) against our web-analytics tracker.\n\n")

	sb.WriteString("## Context\n")
	sb.WriteString(fmt.Sprintf("- The data covers %s to %s\n",
		r.WindowStart.Format("Jan 02"), r.WindowEnd.Format("Jan 02, 2006")))
	sb.WriteString("- Coverage below 80% is concerning; below 70% is critical\n")
	sb.WriteString("- Normal coverage for our business is typically between 80% and 95%\n")
	sb.WriteString(fmt.Sprintf("- The most recent complete day is %s (we wait 24 hours for tracker data to settle)\n\n",
		r.WindowEnd.Format("Jan 02, 2006")))

	sb.WriteString("## Transactions Coverage Data\n")
	sb.WriteString(dailyTable(r.Daily, domain.DimensionTransactions))
	sb.WriteString("\n## Revenue Coverage Data\n")
	sb.WriteString(dailyTable(r.Daily, domain.DimensionRevenue))

	sb.WriteString("\n## Pooled Summary\n")
	for _, s := range r.Summaries {
		line := fmt.Sprintf("- %s: %s coverage", s.Dimension.Label(), reporting.FormatRatio(s))
		if s.HasDelta {
			line += fmt.Sprintf(" (%s %.1fpp vs prior period)", s.Direction, math.Abs(s.Delta))
		}
		sb.WriteString(line + "\n")
	}

	if len(r.NewsContext) > 0 {
		sb.WriteString("\n## Recent Market Headlines\n")
		for _, h := range r.NewsContext {
			sb.WriteString("- " + h + "\n")
		}
	}

	sb.WriteString("\n## Output Requirements\n")
	sb.WriteString("Respond with 1-2 concise sentences focusing on the most important insight about coverage levels and their trend. ")
	sb.WriteString("Round percentages to 1 decimal place. ")
	sb.WriteString("Do not repeat the raw per-dimension numbers; they are appended separately. ")
	sb.WriteString("Do not add headings, bullets, emoji, or any text beyond the sentences themselves.\n")

	return sb.String()
}

// dailyTable renders a compact markdown table of one dimension, date ASC.
func dailyTable(daily []*domain.DailyMetric, dim domain.Dimension) string {
	var sb strings.Builder
	sb.WriteString("| date | source | tracked | coverage |\n")
	sb.WriteString("|------|--------|---------|----------|\n")
	for _, m := range daily {
		var source, tracked float64
		if dim == domain.DimensionTransactions {
			source, tracked = float64(m.SourceTransactions), float64(m.TrackedTransactions)
		} else {
			source, tracked = m.SourceRevenue, m.TrackedRevenue
		}
		rate := reporting.NoDataMarker
		if source > 0 {
			rate = reporting.FormatPercent(tracked / source)
		}
		sb.WriteString(fmt.Sprintf("| %s | %.0f | %.0f | %s |\n",
			m.Date.Format("2006-01-02"), source, tracked, rate))
	}
	return sb.String()
}
