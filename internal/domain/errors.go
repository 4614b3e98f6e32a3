package domain

import "errors"

var (
	// ErrInvalidReport marks a report whose fields cannot describe a real
	// vehicle (negative speed, longitude outside [-180, 180], NaN values).
	ErrInvalidReport = errors.New("invalid vehicle report")

	// ErrSinkClosed is returned when a record arrives after the sink shut down.
	ErrSinkClosed = errors.New("telemetry sink closed")

	// ErrUnknownState marks an operating-state value outside the known enum.
	ErrUnknownState = errors.New("unknown operating state")
)
