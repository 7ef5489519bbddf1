package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.DBHost != "localhost" {
		t.Errorf("expected default DB host localhost, got %q", cfg.DBHost)
	}
	if cfg.OTPLength != 6 {
		t.Errorf("expected default OTP length 6, got %d", cfg.OTPLength)
	}
	if cfg.OTPExpiry != 10*time.Minute {
		t.Errorf("expected default OTP expiry 10m, got %s", cfg.OTPExpiry)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "market_test")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")

	cfg := Load()

	if cfg.DBHost != "db.internal" {
		t.Errorf("expected db.internal, got %q", cfg.DBHost)
	}
	if cfg.DBName != "market_test" {
		t.Errorf("expected market_test, got %q", cfg.DBName)
	}
	if cfg.JWTAccessExpiry != 30*time.Minute {
		t.Errorf("expected 30m access expiry, got %s", cfg.JWTAccessExpiry)
	}
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "market")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "uikit_market")

	got := Load().DSN()
	want := "host=localhost user=market password=secret dbname=uikit_market port=5432 sslmode=disable TimeZone=UTC"
	if got != want {
		t.Errorf("DSN mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestParseDurationFallback(t *testing.T) {
	if d := parseDuration("not-a-duration", 15*time.Minute); d != 15*time.Minute {
		t.Errorf("expected fallback 15m, got %s", d)
	}
}
