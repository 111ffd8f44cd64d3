package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTManager_IssueAndValidate(t *testing.T) {
	mgr := NewJWTManager("test-secret", "seguros-api", "seguros-api", time.Hour)

	issued, err := mgr.Issue(42, "alice@example.com", "Agent")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if issued.Token == "" || issued.TokenID == "" {
		t.Fatalf("expected token and token id, got %+v", issued)
	}
	if remaining := time.Until(issued.ExpiresAt); remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}

	claims, err := mgr.Validate(issued.Token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Email != "alice@example.com" || claims.Role != "Agent" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID != issued.TokenID {
		t.Fatalf("jti mismatch: claim %q, issued %q", claims.ID, issued.TokenID)
	}
	id, err := claims.AccountID()
	if err != nil || id != 42 {
		t.Fatalf("AccountID() = (%d, %v), want (42, nil)", id, err)
	}
}

func TestJWTManager_DefaultLifetime(t *testing.T) {
	mgr := NewJWTManager("test-secret", "seguros-api", "seguros-api", 0)

	issued, err := mgr.Issue(1, "a@example.com", "Client")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if remaining := time.Until(issued.ExpiresAt); remaining < 23*time.Hour {
		t.Fatalf("expected 24h default lifetime, got %v remaining", remaining)
	}
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	mgr := NewJWTManager("test-secret", "seguros-api", "seguros-api", -time.Minute)

	issued, err := mgr.Issue(7, "old@example.com", "Client")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := mgr.Validate(issued.Token); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTManager_RejectsWrongKey(t *testing.T) {
	issued, err := NewJWTManager("key-one", "seguros-api", "seguros-api", time.Hour).Issue(1, "a@example.com", "Admin")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	other := NewJWTManager("key-two", "seguros-api", "seguros-api", time.Hour)
	if _, err := other.Validate(issued.Token); err == nil {
		t.Fatal("expected validation failure with a different signing key")
	}
}

func TestJWTManager_RejectsIssuerAudienceMismatch(t *testing.T) {
	issued, err := NewJWTManager("shared", "issuer-a", "aud-a", time.Hour).Issue(1, "a@example.com", "Admin")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	cases := map[string]*JWTManager{
		"issuer":   NewJWTManager("shared", "issuer-b", "aud-a", time.Hour),
		"audience": NewJWTManager("shared", "issuer-a", "aud-b", time.Hour),
	}
	for name, mgr := range cases {
		if _, err := mgr.Validate(issued.Token); err == nil {
			t.Errorf("expected validation failure on %s mismatch", name)
		}
	}
}

func TestJWTManager_UniqueTokenIDs(t *testing.T) {
	mgr := NewJWTManager("test-secret", "seguros-api", "seguros-api", time.Hour)

	first, err := mgr.Issue(1, "a@example.com", "Client")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	second, err := mgr.Issue(1, "a@example.com", "Client")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if first.TokenID == second.TokenID {
		t.Fatalf("expected distinct jti values, both were %q", first.TokenID)
	}
}
