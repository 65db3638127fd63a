package server

import (
	"errors"
	"strings"
	"testing"

	"github.com/quickbank/quickbank/internal/models"
)

func signupData(email string) models.SignupData {
	return models.SignupData{
		FirstName:       "Jane",
		LastName:        "Smith",
		Email:           email,
		Password:        "Str0ngPass",
		ConfirmPassword: "Str0ngPass",
	}
}

func TestCreateAndAuthenticate(t *testing.T) {
	s := NewUserStore()

	user, err := s.Create(signupData("jane@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(user.ID, "usr-") {
		t.Errorf("user ID = %q, want usr- prefix", user.ID)
	}
	if user.FirstName != "Jane" || user.Email != "jane@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}

	got, err := s.Authenticate("jane@example.com", "Str0ngPass")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated a different user: %q vs %q", got.ID, user.ID)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	s := NewUserStore()
	if _, err := s.Create(signupData("jane@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := s.Authenticate("jane@example.com", "WrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := s.Authenticate("nobody@example.com", "Str0ngPass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	s := NewUserStore()
	if _, err := s.Create(signupData("jane@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Case-insensitive: the address is the same mailbox.
	if _, err := s.Create(signupData("Jane@Example.com")); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email: err = %v, want ErrEmailTaken", err)
	}
}

func TestSeed(t *testing.T) {
	s := NewUserStore()
	seeded := models.User{ID: "1", FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"}
	if err := s.Seed(seeded, "Quickbank1"); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	user, err := s.Authenticate("john.doe@example.com", "Quickbank1")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if *user != seeded {
		t.Errorf("user = %+v, want %+v", *user, seeded)
	}
}
