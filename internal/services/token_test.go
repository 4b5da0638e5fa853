package services

import (
	"testing"
	"time"

	"github.com/Sehar1999/applicant-tracking-system/internal/models"
)

func TestTokenSignVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	user := &models.User{ID: 42, Email: "user@example.com", RoleID: 1}
	token, err := svc.Sign(user)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.RoleID != 1 {
		t.Errorf("RoleID = %d, want 1", claims.RoleID)
	}
}

func TestTokenVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := signer.Sign(&models.User{ID: 1, Email: "a@b.co", RoleID: 1})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected verification to fail with a different secret")
	}
}

func TestTokenVerifyRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	if _, err := svc.Verify("not.a.token"); err == nil {
		t.Fatal("expected verification to fail")
	}
}

func TestTokenVerifyRejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Sign(&models.User{ID: 1, Email: "a@b.co", RoleID: 1})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
