package repository

import (
	model "github.com/volmatch/volmatch/internal/domain/model"
)

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithUsers preloads volunteer profiles. Profiles without an ID are skipped.
func WithUsers(users []model.User) Option {
	return func(s *MemStore) {
		for _, u := range users {
			if u.ID == "" {
				continue
			}
			if _, exists := s.users[u.ID]; !exists {
				s.userOrder = append(s.userOrder, u.ID)
			}
			s.users[u.ID] = u
		}
	}
}

// WithEvents preloads events. Events without an ID are skipped.
func WithEvents(events []model.Event) Option {
	return func(s *MemStore) {
		for _, e := range events {
			if e.ID == "" {
				continue
			}
			if _, exists := s.events[e.ID]; !exists {
				s.eventOrder = append(s.eventOrder, e.ID)
			}
			s.events[e.ID] = e
		}
	}
}
