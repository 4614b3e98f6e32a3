package core

import (
	"sync/atomic"

	"traffic-advisory-service/internal/domain"
)

// StateHolder is the process-local carrier of the host operating state. The
// surrounding host (or its admin surface) drives transitions; the control
// loop only reads.
type StateHolder struct {
	state atomic.Int32
}

// NewStateHolder starts in the given state.
func NewStateHolder(initial domain.OperatingState) *StateHolder {
	h := &StateHolder{}
	h.state.Store(int32(initial))
	return h
}

func (h *StateHolder) State() domain.OperatingState {
	return domain.OperatingState(h.state.Load())
}

func (h *StateHolder) Set(s domain.OperatingState) {
	h.state.Store(int32(s))
}

var _ domain.StateSource = (*StateHolder)(nil)
