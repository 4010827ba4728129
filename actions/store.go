package actions

import (
	"fmt"
	"sync"
)

type Action string

const (
	Complete Action = "complete"
	Dismiss  Action = "dismiss"
)

// Store records which event ids the user has acted on. An id carries at
// most one action; state lives for the process lifetime and there is no
// removal operation, so an acted-on event stays excluded until restart.
type Store struct {
	mu      sync.RWMutex
	actions map[string]Action
}

func NewStore() *Store {
	return &Store{actions: map[string]Action{}}
}

// Record marks an event id with an action. The first recorded action wins;
// recording again for the same id is a no-op. An unknown action is an
// input-validation error and leaves the store untouched.
func (s *Store) Record(id string, action Action) error {
	switch action {
	case Complete, Dismiss:
	default:
		return fmt.Errorf("invalid action %q, expected %q or %q", action, Complete, Dismiss)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.actions[id]; !ok {
		s.actions[id] = action
	}
	return nil
}

// Has reports whether any action was recorded for the id.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.actions[id]
	return ok
}

// Counts returns how many ids are marked complete and dismissed.
func (s *Store) Counts() (completed, dismissed int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.actions {
		if a == Complete {
			completed++
		} else {
			dismissed++
		}
	}
	return completed, dismissed
}
