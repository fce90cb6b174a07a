package domain

import "time"

// DailyMetric is one day of order activity seen by both systems: the
// commerce system of record and the web-analytics tracker. Tracked figures
// are expected to be at or below source figures, but tracking lag can
// legitimately push them above; nothing here enforces the relation.
type DailyMetric struct {
	Date                time.Time
	SourceTransactions  int64
	TrackedTransactions int64
	SourceRevenue       float64
	TrackedRevenue      float64
}

// Dimension identifies which pair of columns a summary covers.
type Dimension string

const (
	DimensionTransactions Dimension = "TRANSACTIONS"
	DimensionRevenue      Dimension = "REVENUE"
)

// Dimensions lists all report dimensions in render order.
var Dimensions = []Dimension{DimensionTransactions, DimensionRevenue}

// Label returns the human-readable dimension name used in report output.
func (d Dimension) Label() string {
	switch d {
	case DimensionTransactions:
		return "Transactions"
	case DimensionRevenue:
		return "Revenue"
	}
	return string(d)
}
