package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Auth.JWTSecret == "" {
		t.Fatal("signing secret must be defaulted for non-production use")
	}
	if cfg.Auth.AccessTokenTTLHours != 24 {
		t.Fatalf("token TTL default: got %d want 24", cfg.Auth.AccessTokenTTLHours)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("bcrypt cost default: got %d want 12", cfg.Auth.BcryptCost)
	}
	if cfg.Events.UserEventChannel != "chat.v1.user-event" {
		t.Fatalf("user event channel default: got %q", cfg.Events.UserEventChannel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "prod-secret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_HOURS", "2")
	t.Setenv("APP_PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Auth.JWTSecret != "prod-secret" {
		t.Fatalf("secret override: got %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.AccessTokenTTLHours != 2 {
		t.Fatalf("ttl override: got %d", cfg.Auth.AccessTokenTTLHours)
	}
	if cfg.App.Addr() != "0.0.0.0:9000" {
		t.Fatalf("addr: got %q", cfg.App.Addr())
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_HOURS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Auth.AccessTokenTTLHours != 24 {
		t.Fatalf("ttl fallback: got %d want 24", cfg.Auth.AccessTokenTTLHours)
	}
}
