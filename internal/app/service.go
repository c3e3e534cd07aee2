// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	repository "github.com/volmatch/volmatch/internal/adapters/repository"
	"github.com/volmatch/volmatch/internal/domain/matching"
	"github.com/volmatch/volmatch/internal/domain/model"
	"github.com/volmatch/volmatch/pkg/logger"
	"github.com/volmatch/volmatch/pkg/metrics"
)

// Service implements the API dependencies for the matching system.
type Service struct {
	mu sync.RWMutex

	// Core components
	directory repository.Store
	engine    *matching.Engine

	// Configuration
	weights              matching.Weights
	fullScoreDistanceKM  float64
	zeroScoreDistanceKM  float64
	partialOverlapCredit float64
	seedDemoData         bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithWeights sets the composite score weights.
func WithWeights(w matching.Weights) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// WithDistanceThresholds sets the full-score and zero-score distances in km.
func WithDistanceThresholds(fullKM, zeroKM float64) Option {
	return func(s *Service) {
		if fullKM >= 0 && zeroKM > fullKM {
			s.fullScoreDistanceKM = fullKM
			s.zeroScoreDistanceKM = zeroKM
		}
	}
}

// WithPartialOverlapCredit sets the availability credit for overrunning events.
func WithPartialOverlapCredit(credit float64) Option {
	return func(s *Service) {
		if credit >= 0 && credit <= 1 {
			s.partialOverlapCredit = credit
		}
	}
}

// WithDemoData controls whether the sample dataset is loaded on Start.
func WithDemoData(enabled bool) Option {
	return func(s *Service) {
		s.seedDemoData = enabled
	}
}

// WithStore injects a directory store, replacing the default in-memory one.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.directory = store
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		weights:              matching.DefaultWeights(),
		fullScoreDistanceKM:  matching.FullScoreDistanceKM,
		zeroScoreDistanceKM:  matching.ZeroScoreDistanceKM,
		partialOverlapCredit: 0.7,
		seedDemoData:         true,
		logger:               nil, // Will be replaced when service starts
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

	s.logger.Info(ctx, "starting matching service...")

	// Initialize components
	if s.directory == nil {
		if s.seedDemoData {
			s.directory = repository.NewMemStore(
				repository.WithUsers(repository.DemoUsers()),
				repository.WithEvents(repository.DemoEvents()),
			)
			s.logger.Info(ctx, "seeded demo dataset",
				logger.Int("users", s.directory.UserCount(ctx)),
				logger.Int("events", s.directory.EventCount(ctx)),
			)
		} else {
			s.directory = repository.NewMemStore()
		}
	}

	s.engine = matching.NewEngine(
		matching.WithWeights(s.weights),
		matching.WithDistanceThresholds(s.fullScoreDistanceKM, s.zeroScoreDistanceKM),
		matching.WithPartialOverlapCredit(s.partialOverlapCredit),
	)

	metrics.UpdateDirectoryUsers(s.directory.UserCount(ctx))
	metrics.UpdateDirectoryEvents(s.directory.EventCount(ctx))

	s.started = true
	s.logger.Info(ctx, "matching service started",
		logger.Float64("skillWeight", s.weights.Skill),
		logger.Float64("availabilityWeight", s.weights.Availability),
		logger.Float64("distanceWeight", s.weights.Distance),
		logger.Float64("causeWeight", s.weights.Cause),
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

	s.logger.Info(context.Background(), "stopping matching service...")

	s.started = false
	s.logger.Info(context.Background(), "matching service stopped")
}

// Matches ranks all events for the given volunteer, best first.
// The full ranking is returned; truncation belongs to the HTTP layer.
func (s *Service) Matches(ctx context.Context, userID string) ([]model.MatchResult, error) {
	start := time.Now()

	users := s.directory.Users(ctx)
	events := s.directory.Events(ctx)

	metrics.RecordSuggestRequest()
	metrics.ObserveCandidateEvents(len(events))

	results, err := s.engine.MatchesFor(userID, users, events)
	if err != nil {
		metrics.RecordUnknownUser()
		s.logger.Debug(ctx, "suggestion lookup failed",
			logger.String("userID", userID),
			logger.Error(err),
		)
		return nil, err
	}

	for _, r := range results {
		metrics.ObserveMatchScore(r.MatchScore)
	}
	metrics.RecordRankingLatency(float64(time.Since(start).Microseconds()) / 1000.0)

	s.logger.Debug(ctx, "ranked matches",
		logger.String("userID", userID),
		logger.Int("candidates", len(events)),
		logger.Duration("elapsed", time.Since(start)),
	)

	return results, nil
}

// SimilarEvents returns up to limit events related to the given one.
func (s *Service) SimilarEvents(ctx context.Context, eventID string, limit int) ([]model.Event, error) {
	metrics.RecordSimilarRequest()

	events := s.directory.Events(ctx)
	return s.engine.SimilarEvents(eventID, events, limit)
}

// CreateUser stores a volunteer profile, assigning an ID when absent.
func (s *Service) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	stored, err := s.directory.PutUser(ctx, user)
	if err != nil {
		return model.User{}, err
	}

	s.logger.Debug(ctx, "stored volunteer",
		logger.String("userID", stored.ID),
		logger.Int("skills", len(stored.Skills)),
	)
	return stored, nil
}

// CreateEvent stores an event, assigning an ID when absent.
func (s *Service) CreateEvent(ctx context.Context, event model.Event) (model.Event, error) {
	stored, err := s.directory.PutEvent(ctx, event)
	if err != nil {
		return model.Event{}, err
	}

	s.logger.Debug(ctx, "stored event",
		logger.String("eventID", stored.ID),
		logger.String("cause", stored.Cause),
	)
	return stored, nil
}

// ListEvents returns every event in insertion order.
func (s *Service) ListEvents(ctx context.Context) []model.Event {
	return s.directory.Events(ctx)
}

// GetUser returns a volunteer profile by ID.
func (s *Service) GetUser(ctx context.Context, id string) (model.User, error) {
	return s.directory.UserByID(ctx, id)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":            s.started,
		"skillWeight":        s.weights.Skill,
		"availabilityWeight": s.weights.Availability,
		"distanceWeight":     s.weights.Distance,
		"causeWeight":        s.weights.Cause,
	}

	if s.started {
		userCount := s.directory.UserCount(ctx)
		eventCount := s.directory.EventCount(ctx)

		stats["totalUsers"] = userCount
		stats["totalEvents"] = eventCount

		// Update metrics
		metrics.UpdateDirectoryUsers(userCount)
		metrics.UpdateDirectoryEvents(eventCount)
	}

	return stats
}
