package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coverage-report/internal/domain"
)

func sampleReport() *domain.CoverageReport {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	var daily []*domain.DailyMetric
	for i := 0; i < 6; i++ {
		daily = append(daily, &domain.DailyMetric{
			Date:                start.AddDate(0, 0, i),
			SourceTransactions:  716,
			TrackedTransactions: 589,
			SourceRevenue:       40800,
			TrackedRevenue:      32700,
		})
	}

	return &domain.CoverageReport{
		RunID:       "run-1",
		GeneratedAt: time.Date(2025, 3, 7, 8, 0, 0, 0, time.UTC),
		WindowStart: start,
		WindowEnd:   start.AddDate(0, 0, 5),
		Daily:       daily,
		Summaries: []domain.CoverageSummary{
			{
				Dimension:    domain.DimensionTransactions,
				SourceTotal:  716,
				TrackedTotal: 589,
				Ratio:        589.0 / 716.0,
				HasData:      true,
				Delta:        3.5,
				HasDelta:     true,
				Status:       domain.StatusGood,
				Direction:    domain.DirectionUp,
			},
			{
				Dimension:    domain.DimensionRevenue,
				SourceTotal:  40800,
				TrackedTotal: 32700,
				Ratio:        32700.0 / 40800.0,
				HasData:      true,
				Delta:        1.8,
				HasDelta:     true,
				Status:       domain.StatusGood,
				Direction:    domain.DirectionUp,
			},
		},
	}
}

func TestChatMessage_WithNarrative(t *testing.T) {
	r := sampleReport()
	r.Narrative = "Transaction coverage has improved above 80% after a week below threshold."

	msg := ChatMessage(r)

	assert.True(t, strings.HasPrefix(msg, "✅ *Coverage on target* — Mar 06, 2025"))
	assert.Contains(t, msg, r.Narrative)
	assert.Contains(t, msg, "- *Transactions*: 716 (source) vs 589 (tracked) - *Coverage*: 82.3% (↑ 3.5pp)")
	assert.Contains(t, msg, "- *Revenue*: $40.8K (source) vs $32.7K (tracked) - *Coverage*: 80.1% (↑ 1.8pp)")
}

func TestChatMessage_FallbackWithoutNarrative(t *testing.T) {
	r := sampleReport()
	r.Narrative = ""

	msg := ChatMessage(r)

	assert.Contains(t, msg, "Transactions coverage at 82.3% (↑), revenue coverage at 80.1% (↑) over the current period.")
	assert.Contains(t, msg, "82.3%")
}

func TestChatMessage_WorstStatusWins(t *testing.T) {
	r := sampleReport()
	r.Summaries[1].Status = domain.StatusCritical

	msg := ChatMessage(r)
	assert.True(t, strings.HasPrefix(msg, "🚨 *Coverage critical*"))
}

func TestDocument_Sections(t *testing.T) {
	r := sampleReport()
	r.Narrative = "Steady week."
	r.NewsContext = []string{"Retail spending up 2% in February"}

	doc := Document(r)

	assert.Contains(t, doc, "# Tracking Coverage Report — Mar 06, 2025")
	assert.Contains(t, doc, "## Summary")
	assert.Contains(t, doc, "## Analysis")
	assert.Contains(t, doc, "Steady week.")
	assert.Contains(t, doc, "## Daily Transactions")
	assert.Contains(t, doc, "## Daily Revenue")
	assert.Contains(t, doc, "## Market Context")
	assert.Contains(t, doc, "Retail spending up 2% in February")
	assert.Contains(t, doc, "| Transactions | 716 | 589 | 82.3% |")
}

func TestDocument_OmitsEmptySections(t *testing.T) {
	r := sampleReport()
	r.Narrative = ""
	r.NewsContext = nil

	doc := Document(r)
	assert.NotContains(t, doc, "## Analysis")
	assert.NotContains(t, doc, "## Market Context")
}

func TestDocumentNames(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, "coverage-report-2025-03-06.md", DocumentName(r))
	assert.Equal(t, "coverage-chart-2025-03-06.png", ChartName(r))
}

func TestRender_ProducesAllSurfaces(t *testing.T) {
	r := sampleReport()

	rendered, err := Render(r)
	require.NoError(t, err)
	assert.NotEmpty(t, rendered.Chat)
	assert.NotEmpty(t, rendered.Document)
	assert.NotEmpty(t, rendered.Chart)
}

func TestRender_ChartFailureIsRecoverable(t *testing.T) {
	r := sampleReport()
	r.Daily = r.Daily[:1] // too few points to plot

	rendered, err := Render(r)
	require.Error(t, err)
	require.NotNil(t, rendered)
	assert.NotEmpty(t, rendered.Chat)
	assert.NotEmpty(t, rendered.Document)
	assert.Nil(t, rendered.Chart)
}
