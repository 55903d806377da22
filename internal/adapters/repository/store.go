// Package repository defines the roster store interface and errors.
package repository

import (
	"context"

	"github.com/mergington/activities/internal/domain/model"
)

// Store provides read/write access to the activity roster state.
type Store interface {
	// List returns every activity with its roster. Returned values are
	// deep copies; callers may mutate them freely.
	List(ctx context.Context) ([]model.Activity, error)

	// Get returns a single activity by exact name.
	// Returns ErrActivityNotFound if the activity is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Signup adds email to the named activity's roster.
	// Returns ErrActivityNotFound if the activity is unknown and
	// ErrAlreadyRegistered if the student is already on the roster.
	Signup(ctx context.Context, name, email string) error

	// Unregister removes email from the named activity's roster.
	// Returns ErrActivityNotFound if the activity is unknown and
	// ErrNotRegistered if the student is not on the roster.
	Unregister(ctx context.Context, name, email string) error

	// Count returns the number of activities tracked.
	Count(ctx context.Context) int

	// ParticipantCount returns the total registrations across all activities.
	ParticipantCount(ctx context.Context) int
}
