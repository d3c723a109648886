package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if !cfg.DB.IsSQLite() {
		t.Fatalf("expected sqlite driver by default, got %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN != sqliteDefaultDSN {
		t.Fatalf("expected sqlite default DSN, got %q", cfg.DB.DSN)
	}

	if cfg.Session.CartCookie != "drive_session" {
		t.Fatalf("unexpected cart cookie %q", cfg.Session.CartCookie)
	}
	if cfg.Session.AuthCookie != "auth_token" {
		t.Fatalf("unexpected auth cookie %q", cfg.Session.AuthCookie)
	}
	if got := cfg.Session.TTL; got != 720*time.Hour {
		t.Fatalf("expected 30-day session TTL, got %v", got)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_PostgresRequiresDSNOrLegacyParts(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvDBDriver, "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected postgres without DSN to fail")
	}

	t.Setenv(EnvDBHost, "localhost")
	t.Setenv(EnvDBUser, "drive")
	t.Setenv(EnvDBName, "storefront")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with legacy parts failed: %v", err)
	}
	want := "postgres://drive@localhost:5432/storefront?sslmode=disable"
	if cfg.DB.DSN != want {
		t.Fatalf("assembled DSN mismatch: got %q want %q", cfg.DB.DSN, want)
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "3000")
}
