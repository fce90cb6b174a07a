package reporting

import "coverage-report/internal/domain"

// RenderedReport carries every delivery surface for one report.
type RenderedReport struct {
	Report *domain.CoverageReport

	Chat string

	Document     string
	DocumentName string

	// Chart is nil when rendering failed; the report still ships.
	Chart     []byte
	ChartName string
}

// Render produces all surfaces. The chat and document layouts cannot fail;
// a chart rendering error is returned alongside a still-usable result.
func Render(r *domain.CoverageReport) (*RenderedReport, error) {
	rendered := &RenderedReport{
		Report:       r,
		Chat:         ChatMessage(r),
		Document:     Document(r),
		DocumentName: DocumentName(r),
		ChartName:    ChartName(r),
	}

	png, err := RenderChart(r)
	if err != nil {
		return rendered, err
	}
	rendered.Chart = png
	return rendered, nil
}
