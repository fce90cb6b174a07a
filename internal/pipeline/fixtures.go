package pipeline

import (
	"time"

	"coverage-report/internal/domain"
	"coverage-report/internal/storage/memory"
)

// LoadFixtureMetrics seeds a demo window ending at now: two weeks of
// plausible coverage data, with the most recent complete day matching a
// known-good anchor (82.3% transaction coverage, 80.1% revenue coverage).
func LoadFixtureMetrics(store *memory.DailyMetricStore, now time.Time) error {
	days := []*domain.DailyMetric{
		{SourceTransactions: 702, TrackedTransactions: 531, SourceRevenue: 39400, TrackedRevenue: 29800},
		{SourceTransactions: 688, TrackedTransactions: 529, SourceRevenue: 38100, TrackedRevenue: 29500},
		{SourceTransactions: 731, TrackedTransactions: 556, SourceRevenue: 41900, TrackedRevenue: 32000},
		{SourceTransactions: 695, TrackedTransactions: 540, SourceRevenue: 40200, TrackedRevenue: 31000},
		{SourceTransactions: 724, TrackedTransactions: 571, SourceRevenue: 41500, TrackedRevenue: 32400},
		{SourceTransactions: 709, TrackedTransactions: 555, SourceRevenue: 40000, TrackedRevenue: 31200},
		{SourceTransactions: 741, TrackedTransactions: 585, SourceRevenue: 42800, TrackedRevenue: 33700},
		{SourceTransactions: 726, TrackedTransactions: 588, SourceRevenue: 41300, TrackedRevenue: 33000},
		{SourceTransactions: 698, TrackedTransactions: 567, SourceRevenue: 39700, TrackedRevenue: 31900},
		{SourceTransactions: 733, TrackedTransactions: 599, SourceRevenue: 42100, TrackedRevenue: 33900},
		{SourceTransactions: 711, TrackedTransactions: 581, SourceRevenue: 40600, TrackedRevenue: 32600},
		{SourceTransactions: 719, TrackedTransactions: 590, SourceRevenue: 41000, TrackedRevenue: 33000},
		{SourceTransactions: 716, TrackedTransactions: 589, SourceRevenue: 40800, TrackedRevenue: 32700},
		// The two most recent days have incomplete tracker data; both are
		// inside the 24h lag window and get trimmed before computing.
		{SourceTransactions: 680, TrackedTransactions: 402, SourceRevenue: 38900, TrackedRevenue: 22100},
		{SourceTransactions: 305, TrackedTransactions: 118, SourceRevenue: 17400, TrackedRevenue: 6600},
	}

	for i, m := range days {
		m.Date = now.AddDate(0, 0, i-len(days)+1)
	}
	return store.Seed(days)
}
