package jwt

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
}

func TestParseExpired(t *testing.T) {
	token, err := GenerateToken(secret, 1, -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(secret, token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken([]byte("other-secret"), token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := ParseToken(secret, "not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
