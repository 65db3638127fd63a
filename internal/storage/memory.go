package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/quickbank/quickbank/internal/models"
)

// MemoryStore is the in-process Store. Values are kept JSON-encoded so its
// observable behaviour matches the Redis-backed store byte for byte.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) SetAuthToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[KeyAuthToken] = token
	return nil
}

func (s *MemoryStore) GetAuthToken(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[KeyAuthToken], nil
}

func (s *MemoryStore) RemoveAuthToken(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, KeyAuthToken)
	return nil
}

func (s *MemoryStore) SetUserData(_ context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user data: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[KeyUserData] = string(data)
	return nil
}

func (s *MemoryStore) GetUserData(_ context.Context) (*models.User, error) {
	s.mu.RLock()
	raw, ok := s.data[KeyUserData]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode user data: %w", err)
	}
	return &user, nil
}

func (s *MemoryStore) RemoveUserData(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, KeyUserData)
	return nil
}

func (s *MemoryStore) SetRememberMe(_ context.Context, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[KeyRememberMe] = fmt.Sprintf("%t", value)
	return nil
}

func (s *MemoryStore) GetRememberMe(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[KeyRememberMe] == "true", nil
}

func (s *MemoryStore) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, KeyAuthToken)
	delete(s.data, KeyUserData)
	delete(s.data, KeyRememberMe)
	return nil
}
