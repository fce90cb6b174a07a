// Package delivery pushes rendered reports to their configured
// destinations. Destinations are independent: one failing never stops an
// attempt on the others, and a partial delivery is a valid terminal
// outcome.
package delivery

import (
	"context"

	"github.com/rs/zerolog"

	"coverage-report/internal/reporting"
)

// Destination is one configured delivery target.
type Destination interface {
	// Name identifies the destination in logs and outcomes.
	Name() string

	// Deliver pushes the rendered report and returns a destination
	// reference (message timestamp, document URL, ...).
	Deliver(ctx context.Context, rendered *reporting.RenderedReport) (ref string, err error)
}

// Outcome records the result of one destination attempt.
type Outcome struct {
	Destination string
	Ref         string
	Err         error
}

// Dispatcher fans a rendered report out to every destination.
type Dispatcher struct {
	destinations []Destination
	logger       zerolog.Logger
}

// NewDispatcher creates a Dispatcher over the given destinations.
func NewDispatcher(logger zerolog.Logger, destinations ...Destination) *Dispatcher {
	return &Dispatcher{destinations: destinations, logger: logger}
}

// Destinations returns how many targets are configured.
func (d *Dispatcher) Destinations() int {
	return len(d.destinations)
}

// Dispatch attempts every destination in order and returns one outcome per
// destination. Failures are logged and recorded, never propagated early.
func (d *Dispatcher) Dispatch(ctx context.Context, rendered *reporting.RenderedReport) []Outcome {
	outcomes := make([]Outcome, 0, len(d.destinations))
	for _, dest := range d.destinations {
		ref, err := dest.Deliver(ctx, rendered)
		if err != nil {
			d.logger.Error().Err(err).Str("destination", dest.Name()).Msg("delivery failed")
		} else {
			d.logger.Info().Str("destination", dest.Name()).Str("ref", ref).Msg("delivered")
		}
		outcomes = append(outcomes, Outcome{Destination: dest.Name(), Ref: ref, Err: err})
	}
	return outcomes
}
