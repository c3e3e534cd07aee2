// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/volmatch/volmatch/internal/domain/model"
)

// DirectoryDependencies defines the interface for directory operations.
type DirectoryDependencies interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	CreateEvent(ctx context.Context, event model.Event) (model.Event, error)
	ListEvents(ctx context.Context) []model.Event
	GetUser(ctx context.Context, id string) (model.User, error)
}

// UsersHandler handles volunteer directory requests.
type UsersHandler struct {
	deps DirectoryDependencies
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(deps DirectoryDependencies) *UsersHandler {
	return &UsersHandler{deps: deps}
}

// HandlePostUser handles POST /users requests.
func (h *UsersHandler) HandlePostUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: invalid JSON body", ErrBadRequest))
		return
	}
	if err := validateUser(user); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	stored, err := h.deps.CreateUser(r.Context(), user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

// HandleGetUser handles GET /users/{id} requests.
func (h *UsersHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/users/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: missing user id", ErrBadRequest))
		return
	}

	user, err := h.deps.GetUser(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// EventsHandler handles event directory requests.
type EventsHandler struct {
	deps DirectoryDependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps DirectoryDependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// HandleEvents handles GET /events and POST /events requests.
func (h *EventsHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.ListEvents(r.Context()))
	case http.MethodPost:
		h.handlePost(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *EventsHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	var event model.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: invalid JSON body", ErrBadRequest))
		return
	}
	if err := validateEvent(event); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	stored, err := h.deps.CreateEvent(r.Context(), event)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func validateUser(u model.User) error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrBadRequest)
	}
	for _, win := range u.Availability {
		if win.DayOfWeek < 0 || win.DayOfWeek > 6 {
			return fmt.Errorf("%w: dayOfWeek must be within 0-6", ErrBadRequest)
		}
	}
	return nil
}

func validateEvent(e model.Event) error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return fmt.Errorf("%w: missing title", ErrBadRequest)
	case e.EventDate.IsZero():
		return fmt.Errorf("%w: missing eventDate", ErrBadRequest)
	case e.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive", ErrBadRequest)
	}
	return nil
}
