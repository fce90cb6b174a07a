package coverage

import "coverage-report/internal/domain"

// Threshold bands for coverage classification. Normal coverage for the
// business sits between 80% and 95%.
const (
	CriticalBelow = 0.70
	WarningBelow  = 0.80
)

// TrendDeadBand is the delta magnitude, in percentage points, under which
// a change counts as flat.
const TrendDeadBand = 0.5

// Classify maps a coverage ratio onto a status label. Total and
// deterministic; the delta never affects the label, only the arrow.
// A window with no source data classifies as WARNING: missing tracking
// input is worth flagging, but it is not a tracking-integration alarm.
func Classify(ratio float64, hasData bool) domain.Status {
	switch {
	case !hasData:
		return domain.StatusWarning
	case ratio < CriticalBelow:
		return domain.StatusCritical
	case ratio < WarningBelow:
		return domain.StatusWarning
	default:
		return domain.StatusGood
	}
}

// Trend maps a percentage-point delta onto a direction arrow.
func Trend(delta float64, hasDelta bool) domain.Direction {
	switch {
	case !hasDelta:
		return domain.DirectionFlat
	case delta >= TrendDeadBand:
		return domain.DirectionUp
	case delta <= -TrendDeadBand:
		return domain.DirectionDown
	default:
		return domain.DirectionFlat
	}
}
