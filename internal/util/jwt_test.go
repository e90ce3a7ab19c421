package util

import (
	"testing"
	"time"

	"skillpath_backend/internal/model"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		Email: "dev@example.com",
		Role:  model.RoleUser,
	}
	user.ID = 42

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "dev@example.com" {
		t.Errorf("expected email round trip, got %q", claims.Email)
	}
	if claims.Role != model.RoleUser {
		t.Errorf("expected role %q, got %q", model.RoleUser, claims.Role)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "dev@example.com"}
	token, err := GenerateJWT(user, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token, "secret-b"); err == nil {
		t.Error("expected parse failure with the wrong secret")
	}
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{Email: "dev@example.com"}
	token, err := GenerateJWT(user, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Error("expected parse failure for an expired token")
	}
}
