package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Secret1!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "Secret1!" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !VerifyPassword(hash, "Secret1!") {
		t.Fatal("expected password to verify against its own hash")
	}
	if VerifyPassword(hash, "WrongPass") {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestHashPassword_SaltUniqueness(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-input", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("same-input", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same input must differ")
	}
	if !VerifyPassword(first, "same-input") || !VerifyPassword(second, "same-input") {
		t.Fatal("both hashes must verify against the original input")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword("not-a-bcrypt-hash", "anything") {
		t.Fatal("malformed stored hash must count as mismatch")
	}
	if VerifyPassword("", "anything") {
		t.Fatal("empty stored hash must count as mismatch")
	}
}
