package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenAddr string

	DB struct {
		Path string
	}

	Audit struct {
		// Strict fails the primary request when the audit write fails.
		// Default is log-and-continue.
		Strict bool
	}

	Security struct {
		MaxPINAttempts int
		Lockout        time.Duration
	}

	LogDevelopment    bool
	PrometheusEnabled bool
	TrustedProxies    []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.ListenAddr = getenvDefault("APP_LISTEN_ADDR", ":3000")
	cfg.DB.Path = getenvDefault("APP_DB_PATH", "taskdesk.db")
	cfg.Audit.Strict = getenvBool("APP_AUDIT_STRICT", false)
	cfg.LogDevelopment = getenvBool("APP_LOG_DEVELOPMENT", false)
	cfg.PrometheusEnabled = getenvBool("APP_PROMETHEUS_ENDPOINT_ENABLED", false)
	cfg.TrustedProxies = getenvList("APP_TRUSTED_PROXIES")

	attempts, err := getenvInt("APP_MAX_PIN_ATTEMPTS", 5)
	if err != nil {
		return nil, err
	}
	if attempts < 1 {
		return nil, fmt.Errorf("APP_MAX_PIN_ATTEMPTS must be at least 1 (got %d)", attempts)
	}
	cfg.Security.MaxPINAttempts = attempts

	lockoutMinutes, err := getenvInt("APP_LOCKOUT_MINUTES", 5)
	if err != nil {
		return nil, err
	}
	if lockoutMinutes < 1 {
		return nil, fmt.Errorf("APP_LOCKOUT_MINUTES must be at least 1 (got %d)", lockoutMinutes)
	}
	cfg.Security.Lockout = time.Duration(lockoutMinutes) * time.Minute

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getenvList(key string) []string {
	if v := os.Getenv(key); v != "" {
		var result []string
		for _, item := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return nil
}
