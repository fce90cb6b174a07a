package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"coverage-report/internal/domain"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Coverage is stable.", "Coverage is stable."},
		{"fenced", "```\nCoverage is stable.\n```", "Coverage is stable."},
		{"fenced with language", "```markdown\nCoverage dropped.\n```", "Coverage dropped."},
		{"surrounding whitespace", "  Coverage is fine.  ", "Coverage is fine."},
		{"multiline fenced", "```\nline one\nline two\n```", "line one\nline two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.input))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	r := &domain.CoverageReport{
		WindowStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
		Daily: []*domain.DailyMetric{
			{
				Date:                time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
				SourceTransactions:  716,
				TrackedTransactions: 589,
				SourceRevenue:       40800,
				TrackedRevenue:      32700,
			},
		},
		Summaries: []domain.CoverageSummary{
			{
				Dimension: domain.DimensionTransactions,
				Ratio:     589.0 / 716.0, HasData: true,
				Delta: 3.5, HasDelta: true,
				Status: domain.StatusGood, Direction: domain.DirectionUp,
			},
		},
		NewsContext: []string{"Retail spending up in February"},
	}

	prompt := BuildPrompt(r)

	assert.Contains(t, prompt, "Mar 01 to Mar 06, 2025")
	assert.Contains(t, prompt, "## Transactions Coverage Data")
	assert.Contains(t, prompt, "## Revenue Coverage Data")
	assert.Contains(t, prompt, "| 2025-03-06 | 716 | 589 | 82.3% |")
	assert.Contains(t, prompt, "Transactions: 82.3% coverage (↑ 3.5pp vs prior period)")
	assert.Contains(t, prompt, "Retail spending up in February")
}

func TestBuildPrompt_NegativeDeltaShowsMagnitude(t *testing.T) {
	r := &domain.CoverageReport{
		WindowStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
		Summaries: []domain.CoverageSummary{
			{
				Dimension: domain.DimensionTransactions,
				Ratio:     0.78, HasData: true,
				Delta: -1.8, HasDelta: true,
				Status: domain.StatusWarning, Direction: domain.DirectionDown,
			},
		},
	}

	prompt := BuildPrompt(r)

	// The arrow already carries the sign; the number is the magnitude.
	assert.Contains(t, prompt, "(↓ 1.8pp vs prior period)")
	assert.NotContains(t, prompt, "-1.8pp")
}

func TestBuildPrompt_OmitsEmptyNews(t *testing.T) {
	r := &domain.CoverageReport{
		WindowStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
	}
	assert.NotContains(t, BuildPrompt(r), "Recent Market Headlines")
}

func TestNewGeminiNarrator_Defaults(t *testing.T) {
	n := NewGeminiNarrator("key", "", 0)
	assert.Equal(t, DefaultModel, n.model)
	assert.Equal(t, DefaultTimeout, n.timeout)
}
