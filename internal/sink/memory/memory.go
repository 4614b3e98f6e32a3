// Package memory keeps recent control-cycle telemetry in a bounded ring.
// It backs tests and sink-less deployments.
package memory

import (
	"context"
	"sync"

	"traffic-advisory-service/internal/domain"
)

const defaultCapacity = 256

// Sink retains the most recent records, oldest first.
type Sink struct {
	mu      sync.Mutex
	records []domain.ControlCycleResult
	cap     int
	closed  bool
}

func New(capacity int) *Sink {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Sink{cap: capacity}
}

func (s *Sink) Record(_ context.Context, cycle domain.ControlCycleResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrSinkClosed
	}

	s.records = append(s.records, cycle)
	if len(s.records) > s.cap {
		s.records = s.records[len(s.records)-s.cap:]
	}
	return nil
}

// All returns a copy of the retained records.
func (s *Sink) All() []domain.ControlCycleResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ControlCycleResult, len(s.records))
	copy(out, s.records)
	return out
}

// Last returns the most recent record, if any.
func (s *Sink) Last() (domain.ControlCycleResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return domain.ControlCycleResult{}, false
	}
	return s.records[len(s.records)-1], true
}

func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

var _ domain.TelemetrySink = (*Sink)(nil)
