// Package server holds the backend-grade implementations of the remote
// capabilities: a real user store with hashed credentials and signed tokens,
// serving the same contract as the in-process fixtures.
package server

import (
	"errors"
	"strings"
	"sync"

	"github.com/quickbank/quickbank/internal/models"
	"github.com/quickbank/quickbank/internal/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type userRecord struct {
	user         models.User
	passwordHash string
}

// UserStore is an in-memory user registry keyed by email. It stands in for a
// database until one exists; callers only see the models.User projection.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*userRecord
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*userRecord)}
}

// Seed registers a user with a known password, for fixtures and tests.
func (s *UserStore) Seed(user models.User, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[normalize(user.Email)] = &userRecord{user: user, passwordHash: hash}
	return nil
}

// Create registers a new user and returns the stored projection.
func (s *UserStore) Create(data models.SignupData) (*models.User, error) {
	hash, err := utils.HashPassword(data.Password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalize(data.Email)
	if _, exists := s.users[key]; exists {
		return nil, ErrEmailTaken
	}

	user := models.User{
		ID:        utils.NewUserID(),
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
	}
	s.users[key] = &userRecord{user: user, passwordHash: hash}
	return &user, nil
}

// Authenticate verifies the credentials and returns the matching user.
func (s *UserStore) Authenticate(email, password string) (*models.User, error) {
	s.mu.RLock()
	rec, ok := s.users[normalize(email)]
	s.mu.RUnlock()

	if !ok || !utils.CheckPassword(password, rec.passwordHash) {
		return nil, ErrInvalidCredentials
	}
	user := rec.user
	return &user, nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
