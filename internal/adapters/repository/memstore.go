package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	model "github.com/volmatch/volmatch/internal/domain/model"
	"github.com/volmatch/volmatch/pkg/metrics"
)

// In-memory Store implementation.
//
// Maps hold the records; parallel ID slices preserve insertion order so
// listings are deterministic. All reads hand out copies.

// MemStore is a mutex-guarded in-memory directory.
type MemStore struct {
	mu sync.RWMutex

	users     map[string]model.User
	userOrder []string

	events     map[string]model.Event
	eventOrder []string
}

// NewMemStore creates an empty directory store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		users:  make(map[string]model.User),
		events: make(map[string]model.Event),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// UserByID returns the volunteer with the given ID.
func (s *MemStore) UserByID(_ context.Context, id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return u, nil
}

// Users returns all volunteers in insertion order.
func (s *MemStore) Users(_ context.Context) []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id])
	}
	return out
}

// EventByID returns the event with the given ID.
func (s *MemStore) EventByID(_ context.Context, id string) (model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("%w: event %s", ErrNotFound, id)
	}
	return e, nil
}

// Events returns all events in insertion order.
func (s *MemStore) Events(_ context.Context) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Event, 0, len(s.eventOrder))
	for _, id := range s.eventOrder {
		out = append(out, s.events[id])
	}
	return out
}

// PutUser inserts or replaces a volunteer, assigning an ID when absent.
func (s *MemStore) PutUser(_ context.Context, user model.User) (model.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	s.mu.Lock()
	if _, exists := s.users[user.ID]; !exists {
		s.userOrder = append(s.userOrder, user.ID)
	}
	s.users[user.ID] = user
	count := len(s.users)
	s.mu.Unlock()

	metrics.UpdateDirectoryUsers(count)
	return user, nil
}

// PutEvent inserts or replaces an event, assigning an ID when absent.
func (s *MemStore) PutEvent(_ context.Context, event model.Event) (model.Event, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	s.mu.Lock()
	if _, exists := s.events[event.ID]; !exists {
		s.eventOrder = append(s.eventOrder, event.ID)
	}
	s.events[event.ID] = event
	count := len(s.events)
	s.mu.Unlock()

	metrics.UpdateDirectoryEvents(count)
	return event, nil
}

// UserCount returns the number of volunteers tracked.
func (s *MemStore) UserCount(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// EventCount returns the number of events tracked.
func (s *MemStore) EventCount(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
