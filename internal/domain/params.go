package domain

import "time"

// ControlParams is the immutable configuration snapshot handed to each
// control tick. A changed configuration is applied by replacing the whole
// snapshot between ticks, never by mutating fields in place.
type ControlParams struct {
	// Closed longitude interval of the monitored segment.
	ZoneLongStart float64
	ZoneLongEnd   float64

	TickInterval   time.Duration
	StaleThreshold time.Duration
	MaxMissedTicks int

	// Speeds in meters per second.
	FreeFlowSpeed         float64
	SlowdownThreshold     float64
	MaxSlowdown           float64
	MaxVehiclesInSlowdown float64
	AdvisoryFloor         float64
}

// DefaultControlParams mirrors the deployed segment configuration.
func DefaultControlParams() ControlParams {
	return ControlParams{
		ZoneLongStart:         -123.185217,
		ZoneLongEnd:           -123.178521,
		TickInterval:          time.Second,
		StaleThreshold:        3 * time.Second,
		MaxMissedTicks:        5,
		FreeFlowSpeed:         25,
		SlowdownThreshold:     10,
		MaxSlowdown:           20,
		MaxVehiclesInSlowdown: 15,
		AdvisoryFloor:         5,
	}
}

// InZone reports whether a longitude lies inside the monitored interval.
// The segment is modelled as a 1-D interval along the longitude axis;
// latitude is deliberately not part of the test.
func (p ControlParams) InZone(longitude float64) bool {
	return longitude >= p.ZoneLongStart && longitude <= p.ZoneLongEnd
}

// SlowdownFactor is the speed reduction applied per tracked vehicle.
func (p ControlParams) SlowdownFactor() float64 {
	if p.MaxVehiclesInSlowdown <= 0 {
		return 0
	}
	return p.MaxSlowdown / p.MaxVehiclesInSlowdown
}
