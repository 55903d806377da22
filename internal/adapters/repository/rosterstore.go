// Package repository defines the roster store interface and errors.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/metrics"
)

// Map-based, in-memory Store implementation.
//
// Ordering: List returns activities in seed order, so the catalog file
// controls presentation order and repeated calls are deterministic.
// Rosters likewise keep signup order; unregistering splices the slice
// without reordering the remaining students.

// defaultMetricsUpdateInterval is how often the background updater
// refreshes the roster gauges.
const defaultMetricsUpdateInterval = 5 * time.Second

type RosterStore struct {
	mu                    sync.RWMutex
	byName                map[string]*model.Activity
	order                 []string // activity names in seed order
	metricsUpdateInterval time.Duration

	// Background metrics management
	wg       sync.WaitGroup
	stopChan chan struct{}
}

// NewRosterStore constructs a roster store with configuration options.
func NewRosterStore(ctx context.Context, opts ...Option) *RosterStore {
	s := &RosterStore{
		byName:                make(map[string]*model.Activity),
		metricsUpdateInterval: defaultMetricsUpdateInterval,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Initialize stop channel and start the background metrics goroutine
	s.stopChan = make(chan struct{})
	s.startMetricsUpdater(ctx)

	// Initialize gauges
	s.updateMetrics()

	return s
}

// Close gracefully shuts down the background metrics goroutine.
func (s *RosterStore) Close() error {
	// Signal all goroutines to stop
	select {
	case <-s.stopChan:
		// Channel already closed
	default:
		close(s.stopChan)
	}
	s.wg.Wait()
	return nil
}

// List implements Store.List, returning deep copies in seed order.
func (s *RosterStore) List(ctx context.Context) ([]model.Activity, error) {
	start := time.Now()
	defer func() {
		latency := time.Since(start).Milliseconds()
		metrics.RecordStoreQueryLatency(float64(latency))
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Activity, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name].Clone())
	}
	return out, nil
}

// Get returns a deep copy of a single activity by exact name.
func (s *RosterStore) Get(ctx context.Context, name string) (model.Activity, error) {
	start := time.Now()
	defer func() {
		latency := time.Since(start).Milliseconds()
		metrics.RecordStoreQueryLatency(float64(latency))
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byName[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// Signup implements Store.Signup. Names and emails match exactly, so
// "Chess Club" and "chess club" are distinct and lookups never fold case.
func (s *RosterStore) Signup(ctx context.Context, name, email string) error {
	start := time.Now()
	defer func() {
		latency := time.Since(start).Milliseconds()
		metrics.RecordStoreMutationLatency(float64(latency))
	}()

	s.mu.Lock()
	a, ok := s.byName[name]
	if !ok {
		s.mu.Unlock()
		return ErrActivityNotFound
	}
	if a.IsRegistered(email) {
		s.mu.Unlock()
		return ErrAlreadyRegistered
	}
	a.Participants = append(a.Participants, email)
	s.mu.Unlock()

	// Update gauges outside the lock
	metrics.UpdateParticipantCount(s.ParticipantCount(ctx))
	return nil
}

// Unregister implements Store.Unregister, preserving the order of the
// remaining roster entries.
func (s *RosterStore) Unregister(ctx context.Context, name, email string) error {
	start := time.Now()
	defer func() {
		latency := time.Since(start).Milliseconds()
		metrics.RecordStoreMutationLatency(float64(latency))
	}()

	s.mu.Lock()
	a, ok := s.byName[name]
	if !ok {
		s.mu.Unlock()
		return ErrActivityNotFound
	}
	idx := -1
	for i, p := range a.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotRegistered
	}
	a.Participants = append(a.Participants[:idx], a.Participants[idx+1:]...)
	s.mu.Unlock()

	// Update gauges outside the lock
	metrics.UpdateParticipantCount(s.ParticipantCount(ctx))
	return nil
}

// Count returns the total number of activities.
func (s *RosterStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// ParticipantCount returns total registrations across all activities.
func (s *RosterStore) ParticipantCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, a := range s.byName {
		total += len(a.Participants)
	}
	return total
}

// startMetricsUpdater starts a background goroutine that refreshes roster gauges
func (s *RosterStore) startMetricsUpdater(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.metricsUpdateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.updateMetrics()
			}
		}
	}()
}

// updateMetrics refreshes all roster-related gauges
func (s *RosterStore) updateMetrics() {
	s.mu.RLock()
	activityCount := len(s.order)
	participantCount := 0
	for _, a := range s.byName {
		participantCount += len(a.Participants)
	}
	s.mu.RUnlock()

	metrics.UpdateActivityCount(activityCount)
	metrics.UpdateParticipantCount(participantCount)
}
