// Package storage is the key-value persistence shim for session data.
package storage

import (
	"context"

	"github.com/quickbank/quickbank/internal/models"
)

// Keys managed by the store. ClearAll removes exactly these.
const (
	KeyAuthToken  = "quickbank:auth_token"
	KeyUserData   = "quickbank:user_data"
	KeyRememberMe = "quickbank:remember_me"
)

// Store holds the session's persisted state. Reading a key that was never
// written returns the zero value and a nil error, never an error.
type Store interface {
	SetAuthToken(ctx context.Context, token string) error
	GetAuthToken(ctx context.Context) (string, error)
	RemoveAuthToken(ctx context.Context) error

	SetUserData(ctx context.Context, user *models.User) error
	GetUserData(ctx context.Context) (*models.User, error)
	RemoveUserData(ctx context.Context) error

	SetRememberMe(ctx context.Context, value bool) error
	GetRememberMe(ctx context.Context) (bool, error)

	// ClearAll removes every managed key. A partial failure is returned as
	// an error, never swallowed.
	ClearAll(ctx context.Context) error
}
