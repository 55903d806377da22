// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mergington/activities/internal/adapters/repository"
)

// UnregisterDependencies defines the interface for unregister operations.
type UnregisterDependencies interface {
	Unregister(ctx context.Context, name, email string) error
}

// UnregisterHandler handles unregister requests.
type UnregisterHandler struct {
	deps UnregisterDependencies
}

// NewUnregisterHandler creates a new unregister handler.
func NewUnregisterHandler(deps UnregisterDependencies) *UnregisterHandler {
	return &UnregisterHandler{deps: deps}
}

// HandleUnregister handles DELETE /activities/{name}/unregister?email= requests.
func (h *UnregisterHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	const op = "api.unregister"
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, nil)
		return
	}
	// Extract path parameter between /activities/ and /unregister.
	// net/http already decoded percent-escapes in r.URL.Path.
	name := strings.TrimPrefix(r.URL.Path, "/activities/")
	name = strings.TrimSuffix(name, "/unregister")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusNotFound, nil)
		return
	}
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusUnprocessableEntity, ErrMissingEmail)
		return
	}
	err := h.deps.Unregister(r.Context(), name, email)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Unregistered %s from %s", email, name),
		})
	case errors.Is(err, repository.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, repository.ErrActivityNotFound)
	case errors.Is(err, repository.ErrNotRegistered):
		writeError(w, http.StatusBadRequest, repository.ErrNotRegistered)
	default:
		writeError(w, http.StatusInternalServerError, Wrap(op, err))
	}
}
