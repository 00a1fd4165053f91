package config

import (
	"errors"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()
	if cfg.Port != "8000" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.DBPath != "itinerary.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Fatalf("expected default model, got %q", cfg.GeminiModel)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg := Load()
	if cfg.Port != "9090" || cfg.GeminiAPIKey != "key-123" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := AppConfig{GeminiAPIKey: "  "}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected missing key error, got %v", err)
	}
}
