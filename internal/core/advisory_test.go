package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"traffic-advisory-service/internal/domain"
)

func cycleResult(count uint64, avg float64) domain.ControlCycleResult {
	return domain.ControlCycleResult{
		Timestamp:    time.Now(),
		VehicleCount: count,
		AverageSpeed: avg,
	}
}

func TestAdvisoryFreeFlowWhenTrafficMoves(t *testing.T) {
	adv := NewAdvisory()
	p := domain.DefaultControlParams()

	assert.Equal(t, p.FreeFlowSpeed, adv.Decide(cycleResult(8, 20.0), p))
}

func TestAdvisoryFreeFlowWhenSegmentEmpty(t *testing.T) {
	adv := NewAdvisory()
	p := domain.DefaultControlParams()

	// An empty segment reports the free-flow average, which clears the
	// threshold, but even a forced low average must not trigger a slowdown
	// with zero vehicles.
	assert.Equal(t, p.FreeFlowSpeed, adv.Decide(cycleResult(0, 4.0), p))
}

func TestAdvisorySingleSlowVehicle(t *testing.T) {
	adv := NewAdvisory()
	p := domain.DefaultControlParams()

	got := adv.Decide(cycleResult(1, 8.0), p)
	assert.InDelta(t, 25.0-20.0/15.0, got, 1e-9)

	prev, ok := adv.PreviousSent()
	assert.True(t, ok)
	assert.Equal(t, got, prev)
}

func TestAdvisoryClampsToFloorAtFullOccupancy(t *testing.T) {
	adv := NewAdvisory()
	p := domain.DefaultControlParams()

	// 15 vehicles reach the maximum slowdown exactly.
	assert.Equal(t, p.AdvisoryFloor, adv.Decide(cycleResult(15, 6.0), p))
	// More vehicles never push the advisory below the floor.
	assert.Equal(t, p.AdvisoryFloor, adv.Decide(cycleResult(40, 6.0), p))
}

func TestAdvisoryThresholdIsInclusive(t *testing.T) {
	adv := NewAdvisory()
	p := domain.DefaultControlParams()

	// avg == threshold engages the slowdown.
	got := adv.Decide(cycleResult(3, p.SlowdownThreshold), p)
	assert.Less(t, got, p.FreeFlowSpeed)

	// Just above it does not.
	assert.Equal(t, p.FreeFlowSpeed, adv.Decide(cycleResult(3, p.SlowdownThreshold+0.01), p))
}

func TestAdvisoryDecreasesMonotonicallyWithOccupancy(t *testing.T) {
	adv := NewAdvisory()
	p := domain.DefaultControlParams()

	prev := p.FreeFlowSpeed
	for count := uint64(1); count <= 30; count++ {
		got := adv.Decide(cycleResult(count, 6.0), p)
		assert.LessOrEqual(t, got, prev, "count %d", count)
		assert.GreaterOrEqual(t, got, p.AdvisoryFloor, "count %d", count)
		prev = got
	}
}

func TestAdvisoryPreviousSentStartsUnset(t *testing.T) {
	adv := NewAdvisory()

	_, ok := adv.PreviousSent()
	assert.False(t, ok)
}
