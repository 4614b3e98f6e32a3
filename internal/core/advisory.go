package core

import (
	"sync"

	"traffic-advisory-service/internal/domain"
	"traffic-advisory-service/internal/infra"
)

// Advisory maps a cycle result to the speed advisory sent to the actuator.
//
// Policy: once the average speed drops to the slowdown threshold with the
// segment occupied, the advisory falls linearly with occupancy from the
// free-flow speed, clamped at the configured floor once the reduction
// reaches the maximum slowdown. Otherwise the advisory is the free-flow
// speed. The computed value is sent every tick; unchanged values are not
// suppressed.
type Advisory struct {
	mu       sync.Mutex
	prevSent float64
	hasPrev  bool
}

func NewAdvisory() *Advisory {
	return &Advisory{}
}

// Decide computes the advisory for one cycle and records it as the
// previously sent value for diagnostics.
func (a *Advisory) Decide(res domain.ControlCycleResult, p domain.ControlParams) float64 {
	speed := p.FreeFlowSpeed

	if res.AverageSpeed <= p.SlowdownThreshold && res.VehicleCount > 0 {
		reduction := p.SlowdownFactor() * float64(res.VehicleCount)
		speed = p.FreeFlowSpeed - reduction
		if reduction >= p.MaxSlowdown || speed < p.AdvisoryFloor {
			speed = p.AdvisoryFloor
		}
	}

	a.mu.Lock()
	a.prevSent = speed
	a.hasPrev = true
	a.mu.Unlock()

	infra.AdvisorySpeedMPS.Set(speed)
	return speed
}

// PreviousSent returns the last advisory handed to the actuator, if any.
func (a *Advisory) PreviousSent() (float64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.prevSent, a.hasPrev
}
