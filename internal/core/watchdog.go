package core

import (
	"sync"

	"traffic-advisory-service/internal/infra"
)

// LivenessState is the watchdog's view of the upstream data feed.
type LivenessState int

const (
	LivenessAlive LivenessState = iota
	LivenessSilent
	LivenessReset
)

func (s LivenessState) String() string {
	switch s {
	case LivenessAlive:
		return "ALIVE"
	case LivenessSilent:
		return "SILENT"
	case LivenessReset:
		return "RESET"
	default:
		return "UNKNOWN"
	}
}

// LivenessVerdict is the result of one watchdog evaluation.
type LivenessVerdict struct {
	State       LivenessState
	MissedTicks int
}

// Watchdog distinguishes a briefly noisy upstream from a dead one. Any
// accepted ingestion event counts as a heartbeat, whether or not the vehicle
// was inside the zone. After maxMissed consecutive silent ticks it forces a
// registry reset exactly once, then stays in RESET until a heartbeat
// arrives.
type Watchdog struct {
	mu        sync.Mutex
	heartbeat bool
	missed    int
	inReset   bool

	maxMissed int
	registry  *Registry
}

func NewWatchdog(maxMissed int, registry *Registry) *Watchdog {
	if maxMissed <= 0 {
		maxMissed = 5
	}
	return &Watchdog{maxMissed: maxMissed, registry: registry}
}

// Heartbeat marks that an ingestion event was observed since the last tick.
func (w *Watchdog) Heartbeat() {
	w.mu.Lock()
	w.heartbeat = true
	w.mu.Unlock()
}

// Evaluate runs one tick of the liveness state machine and clears the
// heartbeat flag for the next tick.
func (w *Watchdog) Evaluate() LivenessVerdict {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.heartbeat {
		w.heartbeat = false
		w.missed = 0
		w.inReset = false
		return LivenessVerdict{State: LivenessAlive}
	}

	w.missed++
	if w.missed > w.maxMissed {
		if !w.inReset {
			w.registry.Reset()
			w.inReset = true
			infra.WatchdogResetsTotal.Inc()
		}
		return LivenessVerdict{State: LivenessReset, MissedTicks: w.missed}
	}
	return LivenessVerdict{State: LivenessSilent, MissedTicks: w.missed}
}

// InReset reports whether the watchdog already reset the registry during the
// current silence.
func (w *Watchdog) InReset() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inReset
}
