package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"coverage-report/internal/domain"
	"coverage-report/internal/storage"
)

// DailyMetricStore is an in-memory implementation of storage.MetricStore,
// used for fixtures and tests.
type DailyMetricStore struct {
	mu   sync.RWMutex
	data map[string]*domain.DailyMetric // keyed by date (YYYY-MM-DD)
}

// NewDailyMetricStore creates a new in-memory metric store.
func NewDailyMetricStore() *DailyMetricStore {
	return &DailyMetricStore{
		data: make(map[string]*domain.DailyMetric),
	}
}

// Compile-time interface check.
var _ storage.MetricStore = (*DailyMetricStore)(nil)

// Put inserts or replaces the metric for its date.
func (s *DailyMetricStore) Put(m *domain.DailyMetric) error {
	if m == nil || m.Date.IsZero() {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Store a copy to prevent external mutation
	metricCopy := *m
	s.data[dayKey(m.Date)] = &metricCopy
	return nil
}

// Seed inserts a batch of metrics, replacing any existing dates.
func (s *DailyMetricStore) Seed(metrics []*domain.DailyMetric) error {
	for _, m := range metrics {
		if err := s.Put(m); err != nil {
			return err
		}
	}
	return nil
}

// FetchDailyMetrics returns copies of metrics within [start, end], date ASC.
func (s *DailyMetricStore) FetchDailyMetrics(_ context.Context, start, end time.Time) ([]*domain.DailyMetric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.DailyMetric
	for _, m := range s.data {
		if dayBefore(m.Date, start) || dayBefore(end, m.Date) {
			continue
		}
		metricCopy := *m
		result = append(result, &metricCopy)
	}

	if len(result) == 0 {
		return nil, storage.ErrNoMetrics
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// dayBefore compares at date granularity, ignoring time of day.
func dayBefore(a, b time.Time) bool {
	return dayKey(a) < dayKey(b)
}
