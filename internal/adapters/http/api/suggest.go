// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/volmatch/volmatch/internal/domain/model"
)

// SuggestDependencies defines the interface for suggestion operations.
type SuggestDependencies interface {
	Matches(ctx context.Context, userID string) ([]model.MatchResult, error)
}

// SuggestHandler handles match suggestion requests.
type SuggestHandler struct {
	deps         SuggestDependencies
	defaultLimit int
	maxLimit     int
}

// NewSuggestHandler creates a new suggestion handler.
func NewSuggestHandler(deps SuggestDependencies, defaultLimit, maxLimit int) *SuggestHandler {
	return &SuggestHandler{
		deps:         deps,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// suggestResponse mirrors the OpenAPI schema for suggestion responses.
type suggestResponse struct {
	UserID       string              `json:"userId"`
	Matches      []model.MatchResult `json:"matches"`
	TotalMatches int                 `json:"totalMatches"`
	Timestamp    string              `json:"timestamp"`
}

// HandleSuggest handles GET /matching/suggest?userId=X&limit=N requests.
func (h *SuggestHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	userID := r.URL.Query().Get("userId")
	if strings.TrimSpace(userID) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: missing userId", ErrBadRequest))
		return
	}

	h.respond(w, r, userID)
}

// HandleSuggestByPath handles GET /matching/suggest/{userId} requests.
func (h *SuggestHandler) HandleSuggestByPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	// Extract path parameter after /matching/suggest/
	userID := strings.TrimPrefix(r.URL.Path, "/matching/suggest/")
	if userID == "" || strings.Contains(userID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: missing userId", ErrBadRequest))
		return
	}

	h.respond(w, r, userID)
}

func (h *SuggestHandler) respond(w http.ResponseWriter, r *http.Request, userID string) {
	limit := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: limit must be a positive integer", ErrBadRequest))
			return
		}
		if n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", fmt.Errorf("%w: limit exceeds maximum of %d", ErrBadRequest, h.maxLimit))
			return
		}
		limit = n
	}

	results, err := h.deps.Matches(r.Context(), userID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	total := len(results)
	if len(results) > limit {
		results = results[:limit]
	}

	writeJSON(w, http.StatusOK, suggestResponse{
		UserID:       userID,
		Matches:      results,
		TotalMatches: total,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}
