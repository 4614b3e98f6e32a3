// Package httpapi exposes the operational HTTP surface: health, segment
// status, the operating-state signal and Prometheus metrics.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"traffic-advisory-service/internal/core"
	"traffic-advisory-service/internal/infra"
)

// Server wraps the configured router.
type Server struct {
	handler http.Handler
}

// NewServer wires the routes against the registry, the control loop and the
// operating-state holder.
func NewServer(registry *core.Registry, loop *core.Loop, state *core.StateHolder, logger *infra.Logger) *Server {
	router := mux.NewRouter()
	h := &handler{registry: registry, loop: loop, state: state, logger: logger}
	h.register(router)
	router.Use(infra.HTTPMiddleware)

	return &Server{handler: router}
}

// Router returns the configured handler for reuse in tests or an external
// http.Server.
func (s *Server) Router() http.Handler {
	return s.handler
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
