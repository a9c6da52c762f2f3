package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSignAndVerifyJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignJWT(Claims{Sub: "google:123", Email: "ada@example.com", Name: "Ada"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.Sub != "google:123" || claims.Email != "ada@example.com" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.Exp <= time.Now().UTC().Unix() {
		t.Fatalf("expiry not set: %d", claims.Exp)
	}
}

func TestVerifyJWTRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignJWT(Claims{Sub: "google:123"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := VerifyJWT(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyJWTRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	past := time.Now().UTC().Add(-time.Hour).Unix()
	token, err := SignJWT(Claims{Sub: "google:123", Exp: past})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	if _, err := VerifyJWT(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSignJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := SignJWT(Claims{Sub: "google:123"}); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}
