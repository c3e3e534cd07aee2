// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/volmatch/volmatch/internal/adapters/repository"
	"github.com/volmatch/volmatch/internal/domain/matching"
	"github.com/volmatch/volmatch/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Matches ranks every event for a volunteer, best first.
	Matches(ctx context.Context, userID string) ([]model.MatchResult, error)

	// SimilarEvents returns up to limit events related to the given one.
	SimilarEvents(ctx context.Context, eventID string, limit int) ([]model.Event, error)

	// Directory operations.
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	CreateEvent(ctx context.Context, event model.Event) (model.Event, error)
	ListEvents(ctx context.Context) []model.Event
	GetUser(ctx context.Context, id string) (model.User, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	suggestHandler *SuggestHandler
	similarHandler *SimilarHandler
	usersHandler   *UsersHandler
	eventsHandler  *EventsHandler
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	defaultSuggestLimit int
	maxSuggestLimit     int
	similarLimit        int
}

// WithSuggestLimits sets the default and maximum limits for suggestions.
func WithSuggestLimits(defaultLimit, maxLimit int) ServerOption {
	return func(c *serverConfig) {
		if defaultLimit > 0 && maxLimit >= defaultLimit {
			c.defaultSuggestLimit = defaultLimit
			c.maxSuggestLimit = maxLimit
		}
	}
}

// WithSimilarLimit sets the default cap for similar-event lookups.
func WithSimilarLimit(limit int) ServerOption {
	return func(c *serverConfig) {
		if limit > 0 {
			c.similarLimit = limit
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	cfg := &serverConfig{
		defaultSuggestLimit: 10,
		maxSuggestLimit:     100,
		similarLimit:        5,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		suggestHandler: NewSuggestHandler(deps, cfg.defaultSuggestLimit, cfg.maxSuggestLimit),
		similarHandler: NewSimilarHandler(deps, cfg.similarLimit),
		usersHandler:   NewUsersHandler(deps),
		eventsHandler:  NewEventsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/matching/suggest", MetricsMiddleware(s.suggestHandler.HandleSuggest, "suggest"))
	mux.HandleFunc("/matching/suggest/", MetricsMiddleware(s.suggestHandler.HandleSuggestByPath, "suggest"))
	mux.HandleFunc("/users", MetricsMiddleware(s.usersHandler.HandlePostUser, "users"))
	mux.HandleFunc("/users/", MetricsMiddleware(s.usersHandler.HandleGetUser, "users"))
	mux.HandleFunc("/events", MetricsMiddleware(s.eventsHandler.HandleEvents, "events"))
	mux.HandleFunc("/events/", MetricsMiddleware(s.similarHandler.HandleSimilar, "similar"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, matching.ErrUserNotFound) ||
		errors.Is(err, matching.ErrEventNotFound) ||
		errors.Is(err, repository.ErrNotFound)
}
