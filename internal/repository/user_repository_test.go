package repository

import (
	"testing"

	"skillpath_backend/internal/model"
	"skillpath_backend/pkg/security"
)

func TestHashIfChangedHashesStagedPlaintext(t *testing.T) {
	user := &model.User{}
	user.SetPassword("my-secret")

	if err := hashIfChanged(user); err != nil {
		t.Fatalf("hashIfChanged: %v", err)
	}

	if user.Password == "my-secret" {
		t.Error("plaintext must not survive the commit hook")
	}
	if user.PasswordChanged {
		t.Error("dirty flag must be cleared after hashing")
	}
	if !security.CheckPassword("my-secret", user.Password) {
		t.Error("stored hash must verify against the original plaintext")
	}
}

func TestHashIfChangedLeavesCleanRecordUntouched(t *testing.T) {
	stored, err := security.HashPassword("my-secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	user := &model.User{Password: stored}
	user.Name = "renamed" // unrelated mutation

	if err := hashIfChanged(user); err != nil {
		t.Fatalf("hashIfChanged: %v", err)
	}

	if user.Password != stored {
		t.Error("resaving without a password change must keep the hash bit-for-bit")
	}
}

func TestHashIfChangedNeverDoubleHashes(t *testing.T) {
	user := &model.User{}
	user.SetPassword("my-secret")

	if err := hashIfChanged(user); err != nil {
		t.Fatalf("hashIfChanged: %v", err)
	}
	once := user.Password

	if err := hashIfChanged(user); err != nil {
		t.Fatalf("hashIfChanged: %v", err)
	}

	if user.Password != once {
		t.Error("a second commit must not re-hash the stored hash")
	}
}
