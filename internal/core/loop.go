package core

import (
	"context"
	"sync"
	"time"

	"traffic-advisory-service/internal/domain"
	"traffic-advisory-service/internal/infra"
)

// Loop is the periodic driver: once per tick it evaluates the watchdog,
// computes statistics, derives the advisory and emits both telemetry and the
// advisory through the external ports. The ticker is free-running; drift is
// not compensated and a tick delayed by scheduling simply runs late.
type Loop struct {
	watchdog *Watchdog
	stats    *Statistics
	advisory *Advisory
	sink     domain.TelemetrySink
	actuator domain.ActuatorTransport
	state    domain.StateSource
	params   func() domain.ControlParams
	logger   *infra.Logger

	mu      sync.Mutex
	last    domain.ControlCycleResult
	hasLast bool
}

func NewLoop(
	watchdog *Watchdog,
	stats *Statistics,
	advisory *Advisory,
	sink domain.TelemetrySink,
	actuator domain.ActuatorTransport,
	state domain.StateSource,
	params func() domain.ControlParams,
	logger *infra.Logger,
) *Loop {
	return &Loop{
		watchdog: watchdog,
		stats:    stats,
		advisory: advisory,
		sink:     sink,
		actuator: actuator,
		state:    state,
		params:   params,
		logger:   logger,
	}
}

// Run drives the loop until the context is cancelled or the host state
// reaches ERROR. A terminal host state is a clean exit, not a failure.
func (l *Loop) Run(ctx context.Context) error {
	interval := l.params().TickInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.logger.Printf(ctx, "control loop started, interval=%s", interval)

	for {
		select {
		case <-ctx.Done():
			l.logger.Println(ctx, "control loop stopped: context cancelled")
			return nil
		case now := <-ticker.C:
			switch l.state.State() {
			case domain.StateError:
				l.logger.Println(ctx, "control loop terminating: host state ERROR")
				return nil
			case domain.StateActive:
				l.tick(ctx, now)
			default:
				// Not active: skip the tick entirely, including the watchdog.
			}
		}
	}
}

func (l *Loop) tick(ctx context.Context, now time.Time) {
	start := time.Now()
	defer func() {
		infra.TickDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	p := l.params()

	verdict := l.watchdog.Evaluate()
	if verdict.State == LivenessReset {
		l.logger.Printf(ctx, "upstream silent for %d ticks, registry reset in effect", verdict.MissedTicks)
		return
	}

	result := l.stats.Run(now, p)
	result.AdvisorySpeed = l.advisory.Decide(result, p)

	l.mu.Lock()
	l.last = result
	l.hasLast = true
	l.mu.Unlock()

	// Emissions happen outside any registry lock and are fire-and-forget:
	// a failed downstream never stalls the next tick.
	if err := l.sink.Record(ctx, result); err != nil {
		infra.SinkErrorsTotal.Inc()
		l.logger.Errorf(ctx, "telemetry sink: %v", err)
	} else {
		infra.SinkRecordsTotal.Inc()
	}

	if err := l.actuator.SendAdvisory(ctx, result.AdvisorySpeed); err != nil {
		l.logger.Errorf(ctx, "actuator transport: %v", err)
	}

	l.logger.Debugf(ctx, "tick: count=%d avg=%.2f advisory=%.2f throughput=%.2f",
		result.VehicleCount, result.AverageSpeed, result.AdvisorySpeed, result.Throughput)
}

// LastResult returns the most recent cycle result, if a tick has completed.
func (l *Loop) LastResult() (domain.ControlCycleResult, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last, l.hasLast
}
