package security

import "testing"

func TestHashPasswordSaltedAndVerifiable(t *testing.T) {
	const plaintext = "correct horse battery staple"

	first, err := HashPassword(plaintext)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword(plaintext)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same plaintext must differ (salting)")
	}
	if !CheckPassword(plaintext, first) {
		t.Error("first hash must verify against the plaintext")
	}
	if !CheckPassword(plaintext, second) {
		t.Error("second hash must verify against the plaintext")
	}
}

func TestCheckPasswordRejectsWrongCandidate(t *testing.T) {
	hash, err := HashPassword("secret-one")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if CheckPassword("secret-two", hash) {
		t.Error("wrong password must not verify")
	}
	if CheckPassword("", hash) {
		t.Error("empty password must not verify")
	}
}

func TestCheckPasswordRejectsNonHash(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Error("garbage stored value must not verify")
	}
}
