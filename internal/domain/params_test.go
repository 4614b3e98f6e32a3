package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultControlParams(t *testing.T) {
	p := DefaultControlParams()

	assert.Equal(t, time.Second, p.TickInterval)
	assert.Equal(t, 3*time.Second, p.StaleThreshold)
	assert.Equal(t, 5, p.MaxMissedTicks)
	assert.Equal(t, 25.0, p.FreeFlowSpeed)
	assert.Equal(t, 10.0, p.SlowdownThreshold)
	assert.Equal(t, 5.0, p.AdvisoryFloor)
}

func TestInZoneBoundariesAreInclusive(t *testing.T) {
	p := DefaultControlParams()

	assert.True(t, p.InZone(p.ZoneLongStart))
	assert.True(t, p.InZone(p.ZoneLongEnd))
	assert.True(t, p.InZone(-123.18))

	assert.False(t, p.InZone(p.ZoneLongStart-1e-6))
	assert.False(t, p.InZone(p.ZoneLongEnd+1e-6))
	assert.False(t, p.InZone(0))
}

func TestSlowdownFactor(t *testing.T) {
	p := DefaultControlParams()
	assert.InDelta(t, 20.0/15.0, p.SlowdownFactor(), 1e-12)

	p.MaxVehiclesInSlowdown = 0
	assert.Zero(t, p.SlowdownFactor())
}

func TestOperatingStateRoundTrip(t *testing.T) {
	for _, s := range []OperatingState{StateInactive, StateActive, StateError} {
		parsed, err := ParseOperatingState(s.String())
		assert.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseOperatingState("HALTED")
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestVehicleReportValidate(t *testing.T) {
	good := VehicleReport{VehicleID: 1, Latitude: 45.5, Longitude: -123.18, SpeedMPS: 12}
	assert.NoError(t, good.Validate())

	bad := good
	bad.SpeedMPS = -1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidReport)

	bad = good
	bad.Longitude = 181
	assert.ErrorIs(t, bad.Validate(), ErrInvalidReport)

	bad = good
	bad.Latitude = -91
	assert.ErrorIs(t, bad.Validate(), ErrInvalidReport)
}

func TestSnapshotCount(t *testing.T) {
	snap := RegistrySnapshot{Vehicles: []VehicleRecord{{ID: 1}, {ID: 2}}}
	assert.Equal(t, 2, snap.Count())

	assert.Zero(t, RegistrySnapshot{}.Count())
}
