package domain

import (
	"fmt"
	"math"
	"time"
)

// VehicleReport is one decoded position/speed report for a single vehicle.
// Reports arrive in any order and at any rate, possibly concurrently from
// several inbound channels.
type VehicleReport struct {
	VehicleID uint32
	Latitude  float64
	Longitude float64
	SpeedMPS  float64
	// CapturedAt is the producer's embedded capture time. It is recorded for
	// diagnostics only; arrival wall-clock time drives staleness decisions.
	CapturedAt time.Time
}

// Validate rejects reports whose fields cannot describe a real vehicle.
// Errors wrap ErrInvalidReport.
func (r VehicleReport) Validate() error {
	if r.SpeedMPS < 0 || math.IsNaN(r.SpeedMPS) || math.IsInf(r.SpeedMPS, 0) {
		return fmt.Errorf("%w: speed must be a non-negative finite number", ErrInvalidReport)
	}
	if r.Longitude < -180 || r.Longitude > 180 || math.IsNaN(r.Longitude) {
		return fmt.Errorf("%w: longitude must lie in [-180, 180]", ErrInvalidReport)
	}
	if r.Latitude < -90 || r.Latitude > 90 || math.IsNaN(r.Latitude) {
		return fmt.Errorf("%w: latitude must lie in [-90, 90]", ErrInvalidReport)
	}
	return nil
}

// VehicleRecord is the last-known state of a vehicle currently inside the
// monitored segment.
type VehicleRecord struct {
	ID         uint32
	LastSpeed  float64
	EnteredAt  time.Time
	LastSeenAt time.Time
}

// RegistrySnapshot is a consistent, immutable view of the registry taken
// under its exclusivity boundary. ExitedCount is the number of vehicles that
// left the segment since the previous snapshot was taken.
type RegistrySnapshot struct {
	Vehicles    []VehicleRecord
	ExitedCount uint64
	TakenAt     time.Time
}

// Count returns the current occupancy of the segment.
func (s RegistrySnapshot) Count() int {
	return len(s.Vehicles)
}

// ControlCycleResult is the aggregate produced by one control tick.
type ControlCycleResult struct {
	Timestamp     time.Time
	VehicleCount  uint64
	AverageSpeed  float64
	AdvisorySpeed float64
	Throughput    float64
}
