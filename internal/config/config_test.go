package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini default provider, got %q", cfg.Provider)
	}
	if cfg.CacheExpirationHours != 24 {
		t.Fatalf("expected 24h cache expiration, got %d", cfg.CacheExpirationHours)
	}
	if cfg.BundleKeepCount != 5 {
		t.Fatalf("expected keep count 5, got %d", cfg.BundleKeepCount)
	}
	if cfg.RequestTimeout != 120*time.Second {
		t.Fatalf("expected 120s request timeout, got %v", cfg.RequestTimeout)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TLDW_PROVIDER", "ollama")
	t.Setenv("SUMMARY_USER_RATE_LIMIT", "10m")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider != "ollama" {
		t.Fatalf("expected ollama, got %q", cfg.Provider)
	}
	if cfg.UserRateLimit != 10*time.Minute {
		t.Fatalf("expected 10m user limit, got %v", cfg.UserRateLimit)
	}
	if cfg.RedisAddr() != "localhost:6380" {
		t.Fatalf("unexpected redis addr %q", cfg.RedisAddr())
	}
}

func TestCacheTTL(t *testing.T) {
	cfg := &Config{CacheExpirationHours: 6}
	if cfg.CacheTTL() != 6*time.Hour {
		t.Fatalf("expected 6h, got %v", cfg.CacheTTL())
	}
}
