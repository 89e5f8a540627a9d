package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Addr         string
	APIBaseURL   string
	DatabasePath string
	TemplatesDir string
	SessionTTL   time.Duration
	LogLevel     string
}

// Load reads configuration from environment variables with sensible defaults.
// A local .env file is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:         getEnv("ADDR", ":8080"),
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:8000"),
		DatabasePath: getEnv("DB_PATH", "wonderhood.db"),
		TemplatesDir: getEnv("TEMPLATES_DIR", "templates"),
		SessionTTL:   getDuration("SESSION_TTL", 30*24*time.Hour),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
