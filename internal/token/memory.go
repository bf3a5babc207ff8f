package token

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore adalah Store dalam proses untuk pengujian.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Save(_ context.Context, jti string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[jti] = memoryEntry{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Resolve(_ context.Context, jti string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[jti]
	if !ok {
		return 0, ErrInvalid
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, jti)
		return 0, ErrInvalid
	}
	return entry.userID, nil
}

func (s *MemoryStore) Revoke(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, jti)
	return nil
}

var _ Store = (*MemoryStore)(nil)
