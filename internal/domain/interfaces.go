package domain

import "context"

// TelemetrySink receives one aggregate record per control tick. Delivery is
// at-most-once and fire-and-forget; a failed record is logged and dropped.
type TelemetrySink interface {
	Record(ctx context.Context, cycle ControlCycleResult) error
	Close() error
}

// ActuatorTransport delivers a speed advisory to the roadside sign or the
// simulation driving it. No acknowledgement, no retry.
type ActuatorTransport interface {
	SendAdvisory(ctx context.Context, speedMPS float64) error
	Close() error
}

// ReportIngestor accepts decoded vehicle reports from transport adapters.
// Implementations must be safe for concurrent use and must not block beyond
// the registry's internal synchronisation.
type ReportIngestor interface {
	Ingest(report VehicleReport)
}

// StateSource exposes the externally driven operating state of the host.
type StateSource interface {
	State() OperatingState
}
