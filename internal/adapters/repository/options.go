// Package repository defines the roster store interface and errors.
package repository

import (
	"time"

	"github.com/mergington/activities/internal/domain/model"
)

// Option applies a configuration option to the RosterStore.
type Option func(*RosterStore)

// WithActivities seeds the store with the given activities. Each entry is
// deep-copied on the way in; later entries with a duplicate name replace
// earlier ones without disturbing insertion order.
func WithActivities(activities []model.Activity) Option {
	return func(s *RosterStore) {
		for _, a := range activities {
			clone := a.Clone()
			if _, ok := s.byName[clone.Name]; !ok {
				s.order = append(s.order, clone.Name)
			}
			s.byName[clone.Name] = &clone
		}
	}
}

// WithMetricsUpdateInterval sets the interval for background metrics updates.
func WithMetricsUpdateInterval(interval time.Duration) Option {
	return func(s *RosterStore) {
		if interval > 0 {
			s.metricsUpdateInterval = interval
		}
	}
}
