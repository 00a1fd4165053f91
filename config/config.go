package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DatabaseURL  string
	DBPath       string
	GeminiAPIKey string
	GeminiModel  string
	CORSOrigins  []string
}

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is required")

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:         get("PORT", "8000"),
		DatabaseURL:  get("DATABASE_URL", ""),
		DBPath:       get("DB_PATH", "itinerary.db"),
		GeminiAPIKey: get("GEMINI_API_KEY", ""),
		GeminiModel:  get("GEMINI_MODEL", "gemini-1.5-flash"),
		CORSOrigins:  splitList(get("CORS_ORIGINS", "http://localhost:3000")),
	}
	log.Printf("[cfg] port=%s db_url_set=%t db_path=%s model=%s cors=%v",
		cfg.Port, cfg.DatabaseURL != "", cfg.DBPath, cfg.GeminiModel, cfg.CORSOrigins)
	return cfg
}

// Validate reports configuration the process cannot start without.
func (c AppConfig) Validate() error {
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
