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

// SignupDependencies defines the interface for signup operations.
type SignupDependencies interface {
	Signup(ctx context.Context, name, email string) error
}

// SignupHandler handles signup requests.
type SignupHandler struct {
	deps SignupDependencies
}

// NewSignupHandler creates a new signup handler.
func NewSignupHandler(deps SignupDependencies) *SignupHandler {
	return &SignupHandler{deps: deps}
}

// HandleSignup handles POST /activities/{name}/signup?email= requests.
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	const op = "api.signup"
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, nil)
		return
	}
	// Extract path parameter between /activities/ and /signup.
	// net/http already decoded percent-escapes in r.URL.Path.
	name := strings.TrimPrefix(r.URL.Path, "/activities/")
	name = strings.TrimSuffix(name, "/signup")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusNotFound, nil)
		return
	}
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusUnprocessableEntity, ErrMissingEmail)
		return
	}
	err := h.deps.Signup(r.Context(), name, email)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Signed up %s for %s", email, name),
		})
	case errors.Is(err, repository.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, repository.ErrActivityNotFound)
	case errors.Is(err, repository.ErrAlreadyRegistered):
		writeError(w, http.StatusBadRequest, repository.ErrAlreadyRegistered)
	default:
		writeError(w, http.StatusInternalServerError, Wrap(op, err))
	}
}
