package user

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"atlas/internal/auth/models"
	"atlas/pkg/platform/sentinel"
)

// InMemoryStore stores users in memory for tests and database-less
// development. Methods return ErrNotFound for missing users and ErrAlreadyUsed
// for duplicate emails, matching the PostgreSQL store's error contract.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*models.User
}

// NewMemory constructs an empty in-memory user store.
func NewMemory() *InMemoryStore {
	return &InMemoryStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *InMemoryStore) Create(_ context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return fmt.Errorf("email already registered: %w", sentinel.ErrAlreadyUsed)
		}
	}
	clone := *user
	now := time.Now()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	s.users[user.ID] = &clone
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, userID uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[userID]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) UpdateRefreshTokenDigest(_ context.Context, userID uuid.UUID, digest *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
	}
	user.RefreshTokenDigest = digest
	user.UpdatedAt = time.Now()
	return nil
}
