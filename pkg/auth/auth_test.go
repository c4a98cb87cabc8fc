package auth_test

import (
	"testing"

	"github.com/firelovers/storefront/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken(42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user 42, got %d", claims.UserID)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := auth.GenerateToken(42)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.ValidateToken(token + "x"); err == nil {
		t.Error("expected tampered token to be rejected")
	}
	if _, err := auth.ValidateToken("not.a.token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "secret123" {
		t.Error("hash must not equal the plaintext")
	}
	if !auth.CheckPassword(hash, "secret123") {
		t.Error("expected matching password to verify")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
