// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/volmatch/volmatch/internal/domain/model"
)

// SimilarDependencies defines the interface for similar-event operations.
type SimilarDependencies interface {
	SimilarEvents(ctx context.Context, eventID string, limit int) ([]model.Event, error)
}

// SimilarHandler handles similar-event requests.
type SimilarHandler struct {
	deps         SimilarDependencies
	defaultLimit int
}

// NewSimilarHandler creates a new similar-event handler.
func NewSimilarHandler(deps SimilarDependencies, defaultLimit int) *SimilarHandler {
	return &SimilarHandler{
		deps:         deps,
		defaultLimit: defaultLimit,
	}
}

// similarResponse mirrors the OpenAPI schema for similar-event responses.
type similarResponse struct {
	EventID string        `json:"eventId"`
	Similar []model.Event `json:"similar"`
}

// HandleSimilar handles GET /events/{id}/similar?limit=N requests.
func (h *SimilarHandler) HandleSimilar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	// Extract {id} from /events/{id}/similar
	path := strings.TrimPrefix(r.URL.Path, "/events/")
	eventID, rest, ok := strings.Cut(path, "/")
	if !ok || eventID == "" || rest != "similar" {
		http.NotFound(w, r)
		return
	}

	limit := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: limit must be a positive integer", ErrBadRequest))
			return
		}
		limit = n
	}

	similar, err := h.deps.SimilarEvents(r.Context(), eventID, limit)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	writeJSON(w, http.StatusOK, similarResponse{
		EventID: eventID,
		Similar: similar,
	})
}
