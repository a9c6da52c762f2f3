package users

import (
	"context"
	"errors"
	"testing"
)

func TestUpsertFromAuthAndGet(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	user := User{ID: "google:123", Email: "ada@example.com", FullName: "Ada Lovelace"}
	if err := svc.UpsertFromAuth(context.Background(), user); err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}

	got, err := svc.GetByID(context.Background(), "google:123")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "ada@example.com" {
		t.Fatalf("user = %+v", got)
	}

	// Re-login updates the profile in place.
	user.FullName = "Ada King"
	if err := svc.UpsertFromAuth(context.Background(), user); err != nil {
		t.Fatalf("second UpsertFromAuth: %v", err)
	}
	got, _ = svc.GetByID(context.Background(), "google:123")
	if got.FullName != "Ada King" {
		t.Fatalf("user = %+v", got)
	}
}

func TestUpsertFromAuthValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if err := svc.UpsertFromAuth(context.Background(), User{ID: "google:123"}); err == nil {
		t.Fatal("expected error for missing email")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
