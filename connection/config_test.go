package connection

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_ACCESS_TOKEN", "secret")
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("JWT_SECRET_EXPIRESIN", "")
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("LEGACY_ROLE_CHECK", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.DBName != "oldCarHat" {
		t.Errorf("expected default database oldCarHat, got %q", cfg.DBName)
	}
	if cfg.JWTExpiry != time.Hour {
		t.Errorf("expected default expiry 1h, got %v", cfg.JWTExpiry)
	}
	if cfg.LegacyRoleCheck {
		t.Error("legacy role check should be off by default")
	}
}

func TestLoadConfigExpiry(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET_EXPIRESIN", "30m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.JWTExpiry != 30*time.Minute {
		t.Errorf("expected 30m expiry, got %v", cfg.JWTExpiry)
	}
}

func TestLoadConfigInvalidExpiry(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET_EXPIRESIN", "soon")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unparseable expiry")
	}
}

func TestLoadConfigMissingSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_TOKEN", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing JWT secret")
	}
}

func TestLoadConfigLegacyFlag(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LEGACY_ROLE_CHECK", "1")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !cfg.LegacyRoleCheck {
		t.Error("expected legacy role check enabled")
	}
}
