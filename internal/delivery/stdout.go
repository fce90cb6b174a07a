package delivery

import (
	"context"
	"fmt"
	"io"

	"coverage-report/internal/reporting"
)

// StdoutDestination prints the chat layout, used by fixture/dry runs where
// no real destinations are configured.
type StdoutDestination struct {
	w io.Writer
}

// NewStdoutDestination creates a destination writing to w.
func NewStdoutDestination(w io.Writer) *StdoutDestination {
	return &StdoutDestination{w: w}
}

// Compile-time interface check.
var _ Destination = (*StdoutDestination)(nil)

// Name implements Destination.
func (d *StdoutDestination) Name() string {
	return "stdout"
}

// Deliver writes the chat layout.
func (d *StdoutDestination) Deliver(_ context.Context, rendered *reporting.RenderedReport) (string, error) {
	if _, err := fmt.Fprintln(d.w, rendered.Chat); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return "stdout", nil
}
