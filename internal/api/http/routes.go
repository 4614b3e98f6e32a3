package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"traffic-advisory-service/internal/core"
	"traffic-advisory-service/internal/domain"
	"traffic-advisory-service/internal/infra"
)

type handler struct {
	registry *core.Registry
	loop     *core.Loop
	state    *core.StateHolder
	logger   *infra.Logger
}

func (h *handler) register(router *mux.Router) {
	router.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/segment", h.handleSegment).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/state", h.handleGetState).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/state", h.handlePutState).Methods(http.MethodPut)
	router.Handle("/metrics", infra.Handler()).Methods(http.MethodGet)
}

type segmentResponse struct {
	VehicleCount  int      `json:"vehicle_count"`
	AverageSpeed  *float64 `json:"average_speed,omitempty"`
	AdvisorySpeed *float64 `json:"advisory_speed,omitempty"`
	Throughput    *float64 `json:"throughput,omitempty"`
	LastCycleMS   *int64   `json:"last_cycle_ms,omitempty"`
}

type stateRequest struct {
	State string `json:"state"`
}

type stateResponse struct {
	State string `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleSegment(w http.ResponseWriter, r *http.Request) {
	resp := segmentResponse{VehicleCount: h.registry.Count()}

	if last, ok := h.loop.LastResult(); ok {
		avg, adv, thr := last.AverageSpeed, last.AdvisorySpeed, last.Throughput
		ms := last.Timestamp.UnixMilli()
		resp.AverageSpeed = &avg
		resp.AdvisorySpeed = &adv
		resp.Throughput = &thr
		resp.LastCycleMS = &ms
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stateResponse{State: h.state.State().String()})
}

// handlePutState is the host's operating-state signal surface. Setting ERROR
// terminates the control loop on its next tick.
func (h *handler) handlePutState(w http.ResponseWriter, r *http.Request) {
	var req stateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	state, err := domain.ParseOperatingState(req.State)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.state.Set(state)
	h.logger.Printf(r.Context(), "operating state set to %s", state)
	writeJSON(w, http.StatusOK, stateResponse{State: state.String()})
}

func (h *handler) writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg, Code: code})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
