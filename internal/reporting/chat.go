package reporting

import (
	"fmt"
	"strings"

	"coverage-report/internal/domain"
)

// ChatMessage renders the compact chat layout: emoji status headline,
// narrative (or a deterministic fallback), then one bullet per dimension.
func ChatMessage(r *domain.CoverageReport) string {
	var sb strings.Builder

	status := r.OverallStatus()
	sb.WriteString(fmt.Sprintf("%s *%s* — %s\n",
		status.Emoji(), Headline(status), r.WindowEnd.Format("Jan 02, 2006")))

	if r.Narrative != "" {
		sb.WriteString(strings.TrimSpace(r.Narrative))
	} else {
		sb.WriteString(fallbackTrendLine(r))
	}
	sb.WriteString("\n")

	for _, s := range r.Summaries {
		sb.WriteString(formatBullet(s))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Headline maps the overall status onto the short bold highlight.
func Headline(status domain.Status) string {
	switch status {
	case domain.StatusCritical:
		return "Coverage critical"
	case domain.StatusWarning:
		return "Coverage below target"
	default:
		return "Coverage on target"
	}
}

// formatBullet renders one dimension line:
//
//	- *Transactions*: 716 (source) vs 589 (tracked) - *Coverage*: 82.3% (↑ 3.5pp)
func formatBullet(s domain.CoverageSummary) string {
	line := fmt.Sprintf("- *%s*: %s (source) vs %s (tracked) - *Coverage*: %s",
		s.Dimension.Label(),
		formatAmount(s.Dimension, s.SourceTotal),
		formatAmount(s.Dimension, s.TrackedTotal),
		FormatRatio(s))
	if delta := FormatDelta(s); delta != "" {
		line += " " + delta
	}
	return line
}

// fallbackTrendLine is the metrics-only substitute used when the narrative
// service failed or was not configured.
func fallbackTrendLine(r *domain.CoverageReport) string {
	parts := make([]string, 0, len(r.Summaries))
	for _, s := range r.Summaries {
		part := fmt.Sprintf("%s coverage at %s", strings.ToLower(s.Dimension.Label()), FormatRatio(s))
		if s.HasDelta {
			part += fmt.Sprintf(" (%s)", s.Direction)
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return "No coverage data available for the window."
	}
	line := strings.Join(parts, ", ") + " over the current period."
	return strings.ToUpper(line[:1]) + line[1:]
}
