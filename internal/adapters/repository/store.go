// Package repository defines the volunteer/event directory store and errors.
package repository

import (
	"context"

	model "github.com/volmatch/volmatch/internal/domain/model"
)

// Store provides read/write access to the volunteer and event directory.
// Read methods return snapshot copies; mutating a returned slice never
// affects the store.
type Store interface {
	// UserByID returns a volunteer profile.
	// Returns ErrNotFound if the user is unknown.
	UserByID(ctx context.Context, id string) (model.User, error)

	// Users returns all volunteers in insertion order.
	Users(ctx context.Context) []model.User

	// EventByID returns an event.
	// Returns ErrNotFound if the event is unknown.
	EventByID(ctx context.Context, id string) (model.Event, error)

	// Events returns all events in insertion order.
	Events(ctx context.Context) []model.Event

	// PutUser inserts or replaces a volunteer. An empty ID gets one assigned;
	// the stored profile is returned.
	PutUser(ctx context.Context, user model.User) (model.User, error)

	// PutEvent inserts or replaces an event. An empty ID gets one assigned;
	// the stored event is returned.
	PutEvent(ctx context.Context, event model.Event) (model.Event, error)

	// UserCount returns the number of volunteers tracked.
	UserCount(ctx context.Context) int

	// EventCount returns the number of events tracked.
	EventCount(ctx context.Context) int
}
