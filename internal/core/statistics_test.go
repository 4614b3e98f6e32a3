package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"traffic-advisory-service/internal/domain"
)

func TestStatisticsEmptySegmentReportsFreeFlowExactly(t *testing.T) {
	reg := NewRegistry()
	stats := NewStatistics(reg)
	p := domain.DefaultControlParams()

	res := stats.Run(time.Now(), p)

	assert.Zero(t, res.VehicleCount)
	// Exact, not rounded: 25 would survive even rounding anyway, but a
	// non-even free-flow configuration must pass through untouched.
	assert.Equal(t, p.FreeFlowSpeed, res.AverageSpeed)

	p.FreeFlowSpeed = 27.5
	res = stats.Run(time.Now(), p)
	assert.Equal(t, 27.5, res.AverageSpeed)
}

func TestStatisticsAverageRoundsDownToEven(t *testing.T) {
	reg := NewRegistry()
	stats := NewStatistics(reg)
	p := domain.DefaultControlParams()
	now := time.Now()

	reg.Upsert(1, 9.0, true, now)
	reg.Upsert(2, 10.0, true, now)

	res := stats.Run(now, p)

	assert.Equal(t, uint64(2), res.VehicleCount)
	// mean 9.5 floors to 8
	assert.Equal(t, 8.0, res.AverageSpeed)
}

func TestStatisticsSingleSlowVehicle(t *testing.T) {
	reg := NewRegistry()
	stats := NewStatistics(reg)
	p := domain.DefaultControlParams()
	now := time.Now()

	reg.Upsert(42, 8.0, true, now)

	res := stats.Run(now, p)

	assert.Equal(t, uint64(1), res.VehicleCount)
	assert.Equal(t, 8.0, res.AverageSpeed)
}

func TestStatisticsEvictsStaleBeforeAveraging(t *testing.T) {
	reg := NewRegistry()
	stats := NewStatistics(reg)
	p := domain.DefaultControlParams()
	base := time.Now()

	reg.Upsert(1, 2.0, true, base)
	reg.Upsert(2, 10.0, true, base.Add(4*time.Second))

	res := stats.Run(base.Add(4*time.Second), p)

	// Vehicle 1 is past the stale threshold and must not drag the average.
	assert.Equal(t, uint64(1), res.VehicleCount)
	assert.Equal(t, 10.0, res.AverageSpeed)
}

func TestStatisticsThroughputIsExitsPerCycleSecond(t *testing.T) {
	reg := NewRegistry()
	stats := NewStatistics(reg)
	p := domain.DefaultControlParams()
	now := time.Now()

	for id := uint32(1); id <= 3; id++ {
		reg.Upsert(id, 12.0, true, now)
	}
	reg.Upsert(1, 12.0, false, now)
	reg.Upsert(2, 12.0, false, now)

	res := stats.Run(now, p)
	assert.Equal(t, 2.0, res.Throughput)

	// Exits were consumed by the first cycle.
	res = stats.Run(now, p)
	assert.Zero(t, res.Throughput)
}

func TestStatisticsThroughputScalesWithTickInterval(t *testing.T) {
	reg := NewRegistry()
	stats := NewStatistics(reg)
	p := domain.DefaultControlParams()
	p.TickInterval = 2 * time.Second
	now := time.Now()

	reg.Upsert(1, 12.0, true, now)
	reg.Upsert(1, 12.0, false, now)

	res := stats.Run(now, p)
	assert.Equal(t, 0.5, res.Throughput)
}
