package storage

import "errors"

var (
	// ErrNoMetrics is returned when the requested window has no rows.
	// The report cannot be produced without source data, so callers treat
	// this as fatal for the run.
	ErrNoMetrics = errors.New("no metrics in requested window")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
