// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mergington/activities/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// ListActivities returns every activity with its current roster.
	ListActivities(ctx context.Context) ([]model.Activity, error)

	// Signup registers a student for an activity.
	Signup(ctx context.Context, name, email string) error

	// Unregister removes a student from an activity.
	Unregister(ctx context.Context, name, email string) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	activitiesHandler *ActivitiesHandler
	signupHandler     *SignupHandler
	unregisterHandler *UnregisterHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		activitiesHandler: NewActivitiesHandler(deps),
		signupHandler:     NewSignupHandler(deps),
		unregisterHandler: NewUnregisterHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux, deps Dependencies) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/activities", MetricsMiddleware(s.activitiesHandler.HandleGetActivities, "activities"))
	mux.HandleFunc("/activities/", MetricsMiddleware(s.handleActivityAction, "activity_action"))
}

// handleActivityAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. Anything else under the prefix is 404.
func (s *Server) handleActivityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	switch {
	case strings.HasSuffix(rest, "/signup"):
		s.signupHandler.HandleSignup(w, r)
	case strings.HasSuffix(rest, "/unregister"):
		s.unregisterHandler.HandleUnregister(w, r)
	default:
		writeError(w, http.StatusNotFound, nil)
	}
}

// messageResponse mirrors the success shape of the mutation endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse mirrors the error shape of every endpoint.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders err as a detail body. A nil err falls back to the
// standard status text, which matches the generic 404/405 responses.
func writeError(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, detailResponse{Detail: msg})
}
