// Package insight generates the natural-language trend narrative layered
// on top of computed coverage metrics. The narrative is optional: any
// failure here degrades the report to metrics-only, it never blocks
// delivery.
package insight

import (
	"context"
	"strings"

	"coverage-report/internal/domain"
)

// Narrator produces a short free-text analysis of a coverage report.
type Narrator interface {
	Narrate(ctx context.Context, r *domain.CoverageReport) (string, error)
}

// stripFences removes markdown code fences the model sometimes wraps its
// answer in.
func stripFences(response string) string {
	response = strings.TrimSpace(response)
	if !strings.HasPrefix(response, "```") {
		return response
	}

	lines := strings.Split(response, "\n")
	var kept []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
