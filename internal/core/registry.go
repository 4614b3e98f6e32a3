package core

import (
	"sync"
	"time"

	"traffic-advisory-service/internal/domain"
	"traffic-advisory-service/internal/infra"
)

// UpsertOutcome describes what a single report did to the registry.
type UpsertOutcome int

const (
	OutcomeIgnored UpsertOutcome = iota
	OutcomeEntered
	OutcomeRefreshed
	OutcomeExited
)

// Registry tracks the vehicles currently inside the monitored segment.
//
// All access is serialised through one mutex: ingestion takes it per event,
// the control loop takes it once per tick for eviction plus snapshot. The
// raw map is never exposed.
type Registry struct {
	mu       sync.Mutex
	vehicles map[uint32]*domain.VehicleRecord

	// exitedSpeeds keeps the last speed of vehicles that left during the
	// current cycle, for diagnostics. Cleared when the snapshot is taken.
	exitedSpeeds map[uint32]float64
	exited       uint64
}

func NewRegistry() *Registry {
	return &Registry{
		vehicles:     make(map[uint32]*domain.VehicleRecord),
		exitedSpeeds: make(map[uint32]float64),
	}
}

// Upsert applies one report. An in-zone report creates or refreshes the
// record; an out-of-zone report removes it and counts the exit. Unknown ids
// reported out-of-zone are no-ops.
//
// LastSeenAt is monotonically non-decreasing per id: a late report carrying
// an older arrival time is still applied but never moves the seen time
// backwards.
func (r *Registry) Upsert(id uint32, speed float64, inZone bool, now time.Time) UpsertOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, tracked := r.vehicles[id]

	if !inZone {
		if !tracked {
			return OutcomeIgnored
		}
		delete(r.vehicles, id)
		r.exitedSpeeds[id] = speed
		r.exited++
		infra.SegmentOccupancy.Set(float64(len(r.vehicles)))
		return OutcomeExited
	}

	if !tracked {
		r.vehicles[id] = &domain.VehicleRecord{
			ID:         id,
			LastSpeed:  speed,
			EnteredAt:  now,
			LastSeenAt: now,
		}
		infra.SegmentOccupancy.Set(float64(len(r.vehicles)))
		return OutcomeEntered
	}

	rec.LastSpeed = speed
	if now.After(rec.LastSeenAt) {
		rec.LastSeenAt = now
	}
	return OutcomeRefreshed
}

// EvictStale removes every record not refreshed within ttl and returns the
// number of evictions. Evicted vehicles stopped reporting rather than left,
// so they do not count toward the exit throughput.
func (r *Registry) EvictStale(now time.Time, ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.evictStaleLocked(now, ttl)
}

func (r *Registry) evictStaleLocked(now time.Time, ttl time.Duration) int {
	evicted := 0
	for id, rec := range r.vehicles {
		if now.Sub(rec.LastSeenAt) > ttl {
			delete(r.vehicles, id)
			evicted++
		}
	}
	if evicted > 0 {
		infra.StaleEvictionsTotal.Add(float64(evicted))
		infra.SegmentOccupancy.Set(float64(len(r.vehicles)))
	}
	return evicted
}

// Reset clears the registry and its derived counters atomically. Used by the
// watchdog recovery path.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vehicles = make(map[uint32]*domain.VehicleRecord)
	r.exitedSpeeds = make(map[uint32]float64)
	r.exited = 0
	infra.SegmentOccupancy.Set(0)
}

// Snapshot returns a consistent view of the registry and drains the
// exited-since-last-read counter.
func (r *Registry) Snapshot(now time.Time) domain.RegistrySnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(now)
}

func (r *Registry) snapshotLocked(now time.Time) domain.RegistrySnapshot {
	snap := domain.RegistrySnapshot{
		Vehicles:    make([]domain.VehicleRecord, 0, len(r.vehicles)),
		ExitedCount: r.exited,
		TakenAt:     now,
	}
	for _, rec := range r.vehicles {
		snap.Vehicles = append(snap.Vehicles, *rec)
	}
	r.exited = 0
	for id := range r.exitedSpeeds {
		delete(r.exitedSpeeds, id)
	}
	return snap
}

// Sweep runs eviction and snapshot under a single critical section, so the
// per-tick read cannot interleave with a concurrent upsert between the two
// steps.
func (r *Registry) Sweep(now time.Time, ttl time.Duration) (domain.RegistrySnapshot, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := r.evictStaleLocked(now, ttl)
	return r.snapshotLocked(now), evicted
}

// Count returns the current occupancy.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.vehicles)
}
