package config

import (
	"context"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Port)
	}
	if cfg.JWT.ExpirationHours != 24 {
		t.Errorf("default expiration hours = %d, want 24", cfg.JWT.ExpirationHours)
	}
	if cfg.JWT.Issuer != "seguros-api" || cfg.JWT.Audience != "seguros-api" {
		t.Errorf("unexpected issuer/audience: %q/%q", cfg.JWT.Issuer, cfg.JWT.Audience)
	}
}

func TestLoad_DevFallbackSigningKey(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.JWT.Secret != devSigningKey {
		t.Errorf("expected dev fallback key, got %q", cfg.JWT.Secret)
	}
}

func TestLoad_ProductionRequiresSigningKey(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected JWT_SECRET error in production, got %v", err)
	}
}

func TestLoad_ProductionWithExplicitKey(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "explicit-production-key")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.JWT.Secret != "explicit-production-key" {
		t.Errorf("unexpected secret: %q", cfg.JWT.Secret)
	}
}
