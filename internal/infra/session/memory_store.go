package session

import (
	"context"
	"sync"

	"plateful/internal/domain/service"

	"github.com/google/uuid"
)

// memoryStore is a mutex-guarded in-process SessionStore. It backs tests and
// single-instance deployments without redis; sessions do not survive restarts.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]uuid.UUID
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore() service.SessionStore {
	return &memoryStore{
		sessions: make(map[string]uuid.UUID),
	}
}

// Issue generates a fresh token and stores it.
func (s *memoryStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}

	return token, s.Set(ctx, token, userID)
}

// Set associates a session token with a user id.
func (s *memoryStore) Set(_ context.Context, token string, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = userID

	return nil
}

// Get resolves a session token to a user id.
func (s *memoryStore) Get(_ context.Context, token string) (uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.sessions[token]
	if !ok {
		return uuid.Nil, service.ErrSessionNotFound
	}

	return userID, nil
}

// Clear removes a session token.
func (s *memoryStore) Clear(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)

	return nil
}
