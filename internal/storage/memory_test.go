package storage

import (
	"context"
	"testing"

	"github.com/quickbank/quickbank/internal/models"
)

func TestMemoryStoreAbsentValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	token, err := s.GetAuthToken(ctx)
	if err != nil || token != "" {
		t.Errorf("GetAuthToken on empty store = (%q, %v), want (\"\", nil)", token, err)
	}
	user, err := s.GetUserData(ctx)
	if err != nil || user != nil {
		t.Errorf("GetUserData on empty store = (%v, %v), want (nil, nil)", user, err)
	}
	remember, err := s.GetRememberMe(ctx)
	if err != nil || remember {
		t.Errorf("GetRememberMe on empty store = (%v, %v), want (false, nil)", remember, err)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.SetAuthToken(ctx, "mock-token-123"); err != nil {
		t.Fatalf("SetAuthToken: %v", err)
	}
	token, err := s.GetAuthToken(ctx)
	if err != nil || token != "mock-token-123" {
		t.Errorf("GetAuthToken = (%q, %v)", token, err)
	}

	want := models.User{ID: "1", FirstName: "John", LastName: "Doe", Email: "a@b.com"}
	if err := s.SetUserData(ctx, &want); err != nil {
		t.Fatalf("SetUserData: %v", err)
	}
	user, err := s.GetUserData(ctx)
	if err != nil {
		t.Fatalf("GetUserData: %v", err)
	}
	if *user != want {
		t.Errorf("GetUserData = %+v, want %+v", *user, want)
	}

	if err := s.SetRememberMe(ctx, true); err != nil {
		t.Fatalf("SetRememberMe: %v", err)
	}
	remember, err := s.GetRememberMe(ctx)
	if err != nil || !remember {
		t.Errorf("GetRememberMe = (%v, %v), want (true, nil)", remember, err)
	}
}

func TestMemoryStoreRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.SetAuthToken(ctx, "tok")
	_ = s.SetUserData(ctx, &models.User{ID: "1"})

	if err := s.RemoveAuthToken(ctx); err != nil {
		t.Fatalf("RemoveAuthToken: %v", err)
	}
	if token, _ := s.GetAuthToken(ctx); token != "" {
		t.Errorf("token still present after removal: %q", token)
	}

	if err := s.RemoveUserData(ctx); err != nil {
		t.Fatalf("RemoveUserData: %v", err)
	}
	if user, _ := s.GetUserData(ctx); user != nil {
		t.Errorf("user still present after removal: %+v", user)
	}
}

func TestMemoryStoreClearAll(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.SetAuthToken(ctx, "tok")
	_ = s.SetUserData(ctx, &models.User{ID: "1"})
	_ = s.SetRememberMe(ctx, true)

	if err := s.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	if token, _ := s.GetAuthToken(ctx); token != "" {
		t.Errorf("auth token survived ClearAll: %q", token)
	}
	if user, _ := s.GetUserData(ctx); user != nil {
		t.Errorf("user data survived ClearAll: %+v", user)
	}
	if remember, _ := s.GetRememberMe(ctx); remember {
		t.Error("remember-me survived ClearAll")
	}
}
