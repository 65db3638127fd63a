package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickbank/quickbank/internal/events"
	"github.com/quickbank/quickbank/internal/middleware"
	"github.com/quickbank/quickbank/internal/models"
)

const tokenTTL = 24 * time.Hour

// AuthServer is the backend AuthService: bcrypt-checked credentials and
// HS256-signed tokens. The token is opaque to clients, so swapping it in for
// the fixture implementation changes nothing on the caller side.
type AuthServer struct {
	users     *UserStore
	secret    []byte
	publisher *events.Publisher // optional
}

func NewAuthServer(users *UserStore, secret []byte, publisher *events.Publisher) *AuthServer {
	return &AuthServer{users: users, secret: secret, publisher: publisher}
}

func (s *AuthServer) Login(_ context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	user, err := s.users.Authenticate(creds.Email, creds.Password)
	if err != nil {
		return nil, err
	}
	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: *user, Token: token}, nil
}

func (s *AuthServer) Signup(ctx context.Context, data models.SignupData) (*models.AuthResponse, error) {
	user, err := s.users.Create(data)
	if err != nil {
		return nil, err
	}
	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	if s.publisher != nil {
		err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserRegistered, events.UserRegisteredEvent{
			UserID: user.ID,
			Email:  user.Email,
		})
		if err != nil {
			log.Printf("Failed to publish user.registered event: %v", err)
		}
	}
	return &models.AuthResponse{User: *user, Token: token}, nil
}

// Logout is a placeholder; tokens are stateless and expire on their own.
func (s *AuthServer) Logout(_ context.Context) error {
	return nil
}

func (s *AuthServer) issueToken(user *models.User) (string, error) {
	claims := middleware.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return signed, nil
}
