package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a shoot session stays resolvable after creation.
const DefaultTTL = 30 * time.Minute

// InMemoryStore is a thread-safe TTL store for shoot sessions. Entries are
// purged lazily: expired sessions are dropped on create and treated as
// missing on read.
type InMemoryStore struct {
	mu     sync.RWMutex
	ttl    time.Duration
	now    func() time.Time
	shoots map[string]Shoot
}

// NewInMemoryStore constructs an empty store with the given TTL. A zero TTL
// falls back to DefaultTTL.
func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &InMemoryStore{
		ttl:    ttl,
		now:    time.Now,
		shoots: make(map[string]Shoot),
	}
}

// CreateShoot stores a detection result with its suggested ideas and returns
// the session including its generated ID.
func (s *InMemoryStore) CreateShoot(_ context.Context, product Product, ideas []Idea) (Shoot, error) {
	now := s.now()
	shoot := Shoot{
		ID:        uuid.NewString(),
		Product:   product,
		Ideas:     append([]Idea(nil), ideas...),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.shoots {
		if now.After(existing.ExpiresAt) {
			delete(s.shoots, id)
		}
	}
	s.shoots[shoot.ID] = shoot
	return shoot, nil
}

// GetShoot returns the session by ID, or ErrNotFound when missing or expired.
func (s *InMemoryStore) GetShoot(_ context.Context, id string) (Shoot, error) {
	s.mu.RLock()
	shoot, ok := s.shoots[id]
	s.mu.RUnlock()

	if !ok {
		return Shoot{}, ErrNotFound
	}
	if s.now().After(shoot.ExpiresAt) {
		s.mu.Lock()
		delete(s.shoots, id)
		s.mu.Unlock()
		return Shoot{}, ErrNotFound
	}
	return shoot, nil
}

// DeleteShoot removes a session by ID.
func (s *InMemoryStore) DeleteShoot(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shoots[id]; !ok {
		return ErrNotFound
	}
	delete(s.shoots, id)
	return nil
}

// Count reports the number of live sessions, for monitoring.
func (s *InMemoryStore) Count(_ context.Context) int {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, shoot := range s.shoots {
		if !now.After(shoot.ExpiresAt) {
			count++
		}
	}
	return count
}
