package reporting

import (
	"bytes"
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"coverage-report/internal/domain"
)

// RenderChart draws both coverage ratios over the window as a PNG time
// series. Days with no source activity are skipped. Needs at least two
// plottable days per series; callers treat failure as non-fatal and ship
// the report without the chart.
func RenderChart(r *domain.CoverageReport) ([]byte, error) {
	txX, txY := ratioSeries(r.Daily, domain.DimensionTransactions)
	revX, revY := ratioSeries(r.Daily, domain.DimensionRevenue)
	if len(txX) < 2 || len(revX) < 2 {
		return nil, fmt.Errorf("render chart: not enough plottable days (tx=%d, rev=%d)", len(txX), len(revX))
	}

	graph := chart.Chart{
		Title: "Tracking coverage",
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return FormatPercent(f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{Name: "Transactions", XValues: txX, YValues: txY},
			chart.TimeSeries{Name: "Revenue", XValues: revX, YValues: revY},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// ratioSeries extracts per-day coverage ratios for one dimension.
func ratioSeries(daily []*domain.DailyMetric, dim domain.Dimension) ([]time.Time, []float64) {
	var xs []time.Time
	var ys []float64
	for _, m := range daily {
		var source, tracked float64
		switch dim {
		case domain.DimensionTransactions:
			source, tracked = float64(m.SourceTransactions), float64(m.TrackedTransactions)
		case domain.DimensionRevenue:
			source, tracked = m.SourceRevenue, m.TrackedRevenue
		}
		if source <= 0 {
			continue
		}
		xs = append(xs, m.Date)
		ys = append(ys, tracked/source)
	}
	return xs, ys
}
