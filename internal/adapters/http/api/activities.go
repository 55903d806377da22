// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/mergington/activities/internal/domain/model"
)

// ActivitiesDependencies defines the interface for listing activities.
type ActivitiesDependencies interface {
	ListActivities(ctx context.Context) ([]model.Activity, error)
}

// ActivitiesHandler handles activity listing requests.
type ActivitiesHandler struct {
	deps ActivitiesDependencies
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps ActivitiesDependencies) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleGetActivities handles GET /activities requests. The response is
// a JSON object keyed by activity name.
func (h *ActivitiesHandler) HandleGetActivities(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_activities"
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, nil)
		return
	}
	activities, err := h.deps.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, Wrap(op, err))
		return
	}
	out := make(map[string]model.Activity, len(activities))
	for _, a := range activities {
		out[a.Name] = a
	}
	writeJSON(w, http.StatusOK, out)
}
