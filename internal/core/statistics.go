package core

import (
	"math"
	"time"

	"traffic-advisory-service/internal/domain"
	"traffic-advisory-service/internal/infra"
)

// Statistics computes the per-tick aggregate over the registry. Eviction and
// the snapshot run under one critical section before any arithmetic.
type Statistics struct {
	registry *Registry
}

func NewStatistics(registry *Registry) *Statistics {
	return &Statistics{registry: registry}
}

// Run evaluates one control cycle. The average falls back to the free-flow
// speed for an empty segment, exactly and without rounding, so an
// uncongested segment always reports the configured free-flow value.
// A non-empty average is rounded down to the nearest even integer: advisories
// move in 2-unit steps to avoid actuator chatter.
func (s *Statistics) Run(now time.Time, p domain.ControlParams) domain.ControlCycleResult {
	snap, _ := s.registry.Sweep(now, p.StaleThreshold)

	average := p.FreeFlowSpeed
	if snap.Count() > 0 {
		sum := 0.0
		for _, rec := range snap.Vehicles {
			sum += rec.LastSpeed
		}
		average = roundDownEven(sum / float64(snap.Count()))
	}

	throughput := 0.0
	if secs := p.TickInterval.Seconds(); secs > 0 {
		throughput = float64(snap.ExitedCount) / secs
	}

	infra.AverageSpeedMPS.Set(average)

	return domain.ControlCycleResult{
		Timestamp:    now,
		VehicleCount: uint64(snap.Count()),
		AverageSpeed: average,
		Throughput:   throughput,
	}
}

func roundDownEven(v float64) float64 {
	return math.Floor(v/2) * 2
}
