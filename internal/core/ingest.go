package core

import (
	"context"
	"time"

	"traffic-advisory-service/internal/domain"
	"traffic-advisory-service/internal/infra"
)

// Ingestor converts decoded vehicle reports into registry updates. It may be
// called concurrently from any number of inbound channels and never blocks
// beyond the registry's mutex.
type Ingestor struct {
	registry *Registry
	watchdog *Watchdog
	params   func() domain.ControlParams
	logger   *infra.Logger
	now      func() time.Time
}

func NewIngestor(registry *Registry, watchdog *Watchdog, params func() domain.ControlParams, logger *infra.Logger) *Ingestor {
	return &Ingestor{
		registry: registry,
		watchdog: watchdog,
		params:   params,
		logger:   logger,
		now:      time.Now,
	}
}

// Ingest applies one report. Impossible values are dropped without touching
// the registry or the heartbeat; a report the transport let through must
// still not leak into advisories.
func (h *Ingestor) Ingest(report domain.VehicleReport) {
	if err := report.Validate(); err != nil {
		infra.IngestDroppedTotal.Inc()
		h.logger.Debugf(context.Background(), "dropped report for vehicle %d: %v", report.VehicleID, err)
		return
	}

	p := h.params()
	inZone := p.InZone(report.Longitude)
	outcome := h.registry.Upsert(report.VehicleID, report.SpeedMPS, inZone, h.now())
	h.watchdog.Heartbeat()
	infra.IngestEventsTotal.Inc()

	switch outcome {
	case OutcomeEntered:
		h.logger.Debugf(context.Background(), "vehicle %d entered segment at long=%f", report.VehicleID, report.Longitude)
	case OutcomeExited:
		h.logger.Debugf(context.Background(), "vehicle %d exited segment", report.VehicleID)
	}
}

var _ domain.ReportIngestor = (*Ingestor)(nil)
