package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tahadev/portfolio/internal/core/domain"
)

func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, zerolog.Nop())

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	userID, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("expected user-123, got %s", userID)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute, zerolog.Nop())

	// NewTokenService clamps non-positive TTLs, so build one directly.
	svc = &TokenService{secret: []byte("secret"), ttl: -time.Minute, logger: zerolog.Nop()}

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Verify_WrongKey(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, zerolog.Nop())
	verifier := NewTokenService("secret-b", time.Hour, zerolog.Nop())

	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); err != domain.ErrTokenSignature {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, zerolog.Nop())

	if _, err := svc.Verify("not-a-token"); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
