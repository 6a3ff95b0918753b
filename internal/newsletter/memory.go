package newsletter

import (
	"context"
	"sync"
)

// MemoryStore implements Store with a process-local set. Intended for
// development and tests; subscriptions do not survive a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	emails map[string]struct{}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{emails: make(map[string]struct{})}
}

// Add records a subscriber.
func (s *MemoryStore) Add(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[email]; ok {
		return false, nil
	}

	s.emails[email] = struct{}{}

	return true, nil
}

// Remove deletes a subscriber.
func (s *MemoryStore) Remove(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[email]; !ok {
		return false, nil
	}

	delete(s.emails, email)

	return true, nil
}

// Has reports whether the address is subscribed.
func (s *MemoryStore) Has(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.emails[email]

	return ok, nil
}

// Count returns the number of subscribers.
func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.emails)), nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
