package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.ListenAddr != ":3000" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":3000")
	}
	if cfg.DB.Path != "taskdesk.db" {
		t.Errorf("DB.Path = %q, want %q", cfg.DB.Path, "taskdesk.db")
	}
	if cfg.Audit.Strict {
		t.Errorf("Audit.Strict should default to false")
	}
	if cfg.Security.MaxPINAttempts != 5 {
		t.Errorf("MaxPINAttempts = %d, want 5", cfg.Security.MaxPINAttempts)
	}
	if cfg.Security.Lockout != 5*time.Minute {
		t.Errorf("Lockout = %v, want 5m", cfg.Security.Lockout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_LISTEN_ADDR", ":8080")
	t.Setenv("APP_DB_PATH", "/tmp/other.db")
	t.Setenv("APP_AUDIT_STRICT", "true")
	t.Setenv("APP_MAX_PIN_ATTEMPTS", "3")
	t.Setenv("APP_LOCKOUT_MINUTES", "10")
	t.Setenv("APP_TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":8080")
	}
	if cfg.DB.Path != "/tmp/other.db" {
		t.Errorf("DB.Path = %q, want %q", cfg.DB.Path, "/tmp/other.db")
	}
	if !cfg.Audit.Strict {
		t.Errorf("Audit.Strict = false, want true")
	}
	if cfg.Security.MaxPINAttempts != 3 {
		t.Errorf("MaxPINAttempts = %d, want 3", cfg.Security.MaxPINAttempts)
	}
	if cfg.Security.Lockout != 10*time.Minute {
		t.Errorf("Lockout = %v, want 10m", cfg.Security.Lockout)
	}
	if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[0] != "10.0.0.0/8" || cfg.TrustedProxies[1] != "192.168.1.1" {
		t.Errorf("TrustedProxies = %v", cfg.TrustedProxies)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("APP_MAX_PIN_ATTEMPTS", "zero")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-integer APP_MAX_PIN_ATTEMPTS")
	}

	t.Setenv("APP_MAX_PIN_ATTEMPTS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero APP_MAX_PIN_ATTEMPTS")
	}
}
