// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/catalog"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// Service implements the API dependencies for the signup system.
type Service struct {
	mu sync.RWMutex

	// Core components
	roster repository.Store

	// Configuration
	catalogPath     string
	metricsInterval time.Duration

	// Per-process counters surfaced by GetStats
	signupCount     atomic.Int64
	unregisterCount atomic.Int64
	startTime       time.Time

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCatalogPath sets a YAML catalog file to seed the roster from
// instead of the built-in catalog.
func WithCatalogPath(path string) Option {
	return func(s *Service) {
		s.catalogPath = path
	}
}

// WithMetricsInterval sets how often the roster store refreshes its
// gauges. Non-positive intervals keep the store default.
func WithMetricsInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.metricsInterval = interval
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		stopCh: make(chan struct{}),
		logger: nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting activities service...")

	// Seed the roster from the configured catalog file, or the built-in one
	seed := catalog.Default()
	if s.catalogPath != "" {
		loaded, err := catalog.Load(s.catalogPath)
		if err != nil {
			return fmt.Errorf("loading catalog %s: %w", s.catalogPath, err)
		}
		seed = loaded
		s.logger.Info(ctx, "using catalog file",
			logger.String("path", s.catalogPath),
		)
	}

	storeOpts := []repository.Option{repository.WithActivities(seed)}
	if s.metricsInterval > 0 {
		storeOpts = append(storeOpts, repository.WithMetricsUpdateInterval(s.metricsInterval))
	}
	s.roster = repository.NewRosterStore(ctx, storeOpts...)
	s.logger.Info(ctx, "using in-memory roster store")

	s.startTime = time.Now()
	s.started = true
	s.logger.Info(ctx, "activities service started",
		logger.Int("activities", len(seed)),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping activities service...")

	// Close roster store
	if s.roster != nil {
		if closer, ok := s.roster.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}

	// Signal background work to stop
	select {
	case <-s.stopCh:
		// Channel already closed
	default:
		close(s.stopCh)
	}

	s.started = false
	s.logger.Info(context.Background(), "activities service stopped")
}

// ListActivities returns every activity with its current roster.
func (s *Service) ListActivities(ctx context.Context) ([]model.Activity, error) {
	return s.roster.List(ctx)
}

// GetActivity returns a single activity by exact name.
func (s *Service) GetActivity(ctx context.Context, name string) (model.Activity, error) {
	return s.roster.Get(ctx, name)
}

// Signup registers a student for an activity. The returned error is one
// of the repository sentinels when the request cannot be honored.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	err := s.roster.Signup(ctx, name, email)
	switch {
	case err == nil:
		s.signupCount.Add(1)
		metrics.RecordSignup()
		s.logger.Info(ctx, "student signed up",
			logger.String("activity", name),
			logger.String("email", email),
		)
		return nil
	case errors.Is(err, repository.ErrActivityNotFound):
		metrics.RecordLookupMiss()
		return err
	case errors.Is(err, repository.ErrAlreadyRegistered):
		metrics.RecordSignupConflict()
		return err
	default:
		return err
	}
}

// Unregister removes a student from an activity. The returned error is
// one of the repository sentinels when the request cannot be honored.
func (s *Service) Unregister(ctx context.Context, name, email string) error {
	err := s.roster.Unregister(ctx, name, email)
	switch {
	case err == nil:
		s.unregisterCount.Add(1)
		metrics.RecordUnregistration()
		s.logger.Info(ctx, "student unregistered",
			logger.String("activity", name),
			logger.String("email", email),
		)
		return nil
	case errors.Is(err, repository.ErrActivityNotFound):
		metrics.RecordLookupMiss()
		return err
	case errors.Is(err, repository.ErrNotRegistered):
		metrics.RecordUnregisterConflict()
		return err
	default:
		return err
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		totalActivities := s.roster.Count(ctx)
		totalParticipants := s.roster.ParticipantCount(ctx)

		stats["activities"] = totalActivities
		stats["participants"] = totalParticipants
		stats["signups"] = s.signupCount.Load()
		stats["unregistrations"] = s.unregisterCount.Load()
		stats["uptimeSeconds"] = int64(time.Since(s.startTime).Seconds())

		// Update metrics
		metrics.UpdateActivityCount(totalActivities)
		metrics.UpdateParticipantCount(totalParticipants)
	}

	return stats
}
