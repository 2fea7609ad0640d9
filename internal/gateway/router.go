package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/senselink/senselink-core/internal/endpoint"
)

// buildRouter creates the HTTP router with all routes and middleware.
//
// The route set is driven entirely by the dispatcher's endpoint table:
// read resources become GET routes, submit resources become POST routes.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Health check
	r.Get("/health", s.handleHealth)

	for _, res := range s.dispatcher.Resources() {
		switch res.Method {
		case endpoint.MethodRead:
			r.Get(res.Path, s.handleResource(res))
		case endpoint.MethodSubmit:
			r.Post(res.Path, s.handleResource(res))
		}
	}

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // Best effort response write
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
