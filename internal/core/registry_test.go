package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistryUpsertTracksDistinctVehicles(t *testing.T) {
	reg := NewRegistry()
	now := time.Now()

	assert.Equal(t, OutcomeEntered, reg.Upsert(1, 12.5, true, now))
	assert.Equal(t, OutcomeEntered, reg.Upsert(2, 9.0, true, now))
	assert.Equal(t, OutcomeRefreshed, reg.Upsert(1, 11.0, true, now.Add(time.Second)))

	assert.Equal(t, 2, reg.Count())
}

func TestRegistryUpsertUnknownOutOfZoneIsNoop(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, OutcomeIgnored, reg.Upsert(7, 5.0, false, time.Now()))
	assert.Equal(t, 0, reg.Count())

	snap := reg.Snapshot(time.Now())
	assert.Zero(t, snap.ExitedCount)
}

func TestRegistryExitIncrementsExitedCount(t *testing.T) {
	reg := NewRegistry()
	now := time.Now()

	reg.Upsert(1, 8.0, true, now)
	reg.Upsert(1, 8.0, false, now.Add(time.Second))

	assert.Equal(t, 0, reg.Count())

	snap := reg.Snapshot(now.Add(2 * time.Second))
	assert.Equal(t, uint64(1), snap.ExitedCount)

	// The counter drains on read.
	snap = reg.Snapshot(now.Add(3 * time.Second))
	assert.Zero(t, snap.ExitedCount)
}

func TestRegistryEvictStaleRemovesSilentVehicles(t *testing.T) {
	reg := NewRegistry()
	base := time.Now()
	ttl := 3 * time.Second

	reg.Upsert(1, 10.0, true, base)
	reg.Upsert(2, 10.0, true, base.Add(2*time.Second))

	evicted := reg.EvictStale(base.Add(4*time.Second), ttl)

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, reg.Count())

	snap := reg.Snapshot(base.Add(4 * time.Second))
	assert.Len(t, snap.Vehicles, 1)
	assert.Equal(t, uint32(2), snap.Vehicles[0].ID)
	// Evictions are not exits.
	assert.Zero(t, snap.ExitedCount)
}

func TestRegistryLateReportNeverMovesSeenTimeBackwards(t *testing.T) {
	reg := NewRegistry()
	base := time.Now()

	reg.Upsert(1, 10.0, true, base.Add(2*time.Second))
	reg.Upsert(1, 6.0, true, base)

	snap := reg.Snapshot(base.Add(3 * time.Second))
	assert.Len(t, snap.Vehicles, 1)
	// The late report's speed is applied, its older arrival time is not.
	assert.Equal(t, 6.0, snap.Vehicles[0].LastSpeed)
	assert.Equal(t, base.Add(2*time.Second), snap.Vehicles[0].LastSeenAt)
}

func TestRegistryResetClearsStateAndCounters(t *testing.T) {
	reg := NewRegistry()
	now := time.Now()

	reg.Upsert(1, 10.0, true, now)
	reg.Upsert(2, 10.0, true, now)
	reg.Upsert(2, 10.0, false, now.Add(time.Second))

	reg.Reset()

	assert.Equal(t, 0, reg.Count())
	snap := reg.Snapshot(now.Add(2 * time.Second))
	assert.Empty(t, snap.Vehicles)
	assert.Zero(t, snap.ExitedCount)
}

func TestRegistrySweepEvictsBeforeSnapshot(t *testing.T) {
	reg := NewRegistry()
	base := time.Now()

	reg.Upsert(1, 10.0, true, base)
	reg.Upsert(2, 12.0, true, base.Add(2*time.Second))
	reg.Upsert(3, 14.0, true, base.Add(2*time.Second))
	reg.Upsert(3, 14.0, false, base.Add(3*time.Second))

	snap, evicted := reg.Sweep(base.Add(4*time.Second), 3*time.Second)

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, snap.Count())
	assert.Equal(t, uint64(1), snap.ExitedCount)
}

func TestRegistryConcurrentUpsertsStayConsistent(t *testing.T) {
	reg := NewRegistry()
	now := time.Now()

	done := make(chan struct{})
	for g := 0; g < 4; g++ {
		go func(offset uint32) {
			defer func() { done <- struct{}{} }()
			for i := uint32(0); i < 100; i++ {
				reg.Upsert(offset*100+i, 10.0, true, now)
			}
		}(uint32(g))
	}
	for g := 0; g < 4; g++ {
		<-done
	}

	assert.Equal(t, 400, reg.Count())
}
