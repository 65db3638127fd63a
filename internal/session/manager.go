// Package session owns the application's auth state. Screens ask the Manager
// instead of threading an auth flag through navigation callbacks.
package session

import (
	"context"
	"fmt"
	"log"

	"github.com/quickbank/quickbank/internal/models"
	"github.com/quickbank/quickbank/internal/service"
	"github.com/quickbank/quickbank/internal/storage"
)

// Manager is the single controller for login, signup, logout and session
// restoration. Token presence in the store is the sole authentication
// signal; there is no refresh or expiry handling.
type Manager struct {
	auth  service.AuthService
	store storage.Store
}

func NewManager(auth service.AuthService, store storage.Store) *Manager {
	return &Manager{auth: auth, store: store}
}

// Login validates the form locally, authenticates remotely, then persists
// the session. Validation failures never reach the auth service.
func (m *Manager) Login(ctx context.Context, creds models.Credentials, remember bool) (*models.AuthResponse, error) {
	if err := ValidateCredentials(creds); err != nil {
		return nil, err
	}
	resp, err := m.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if err := m.persist(ctx, resp, remember); err != nil {
		return nil, err
	}
	return resp, nil
}

// Signup validates the form locally (including the password policy and the
// confirm-password match), registers remotely, then persists the session.
func (m *Manager) Signup(ctx context.Context, data models.SignupData) (*models.AuthResponse, error) {
	if err := ValidateSignup(data); err != nil {
		return nil, err
	}
	resp, err := m.auth.Signup(ctx, data)
	if err != nil {
		return nil, err
	}
	if err := m.persist(ctx, resp, false); err != nil {
		return nil, err
	}
	return resp, nil
}

// Logout tears the session down by explicit key removal. The remember-me
// preference survives; it belongs to the login screen, not the session.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.auth.Logout(ctx); err != nil {
		log.Printf("session: remote logout failed: %v", err)
	}
	if err := m.store.RemoveAuthToken(ctx); err != nil {
		return fmt.Errorf("remove auth token: %w", err)
	}
	if err := m.store.RemoveUserData(ctx); err != nil {
		return fmt.Errorf("remove user data: %w", err)
	}
	return nil
}

// Authenticated reports whether a token is present.
func (m *Manager) Authenticated(ctx context.Context) (bool, error) {
	token, err := m.store.GetAuthToken(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// Restore loads the persisted session, if any. Both return values are zero
// when no session exists.
func (m *Manager) Restore(ctx context.Context) (*models.User, string, error) {
	token, err := m.store.GetAuthToken(ctx)
	if err != nil {
		return nil, "", err
	}
	if token == "" {
		return nil, "", nil
	}
	user, err := m.store.GetUserData(ctx)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (m *Manager) persist(ctx context.Context, resp *models.AuthResponse, remember bool) error {
	if err := m.store.SetAuthToken(ctx, resp.Token); err != nil {
		return fmt.Errorf("persist auth token: %w", err)
	}
	if err := m.store.SetUserData(ctx, &resp.User); err != nil {
		return fmt.Errorf("persist user data: %w", err)
	}
	if err := m.store.SetRememberMe(ctx, remember); err != nil {
		return fmt.Errorf("persist remember me: %w", err)
	}
	return nil
}
