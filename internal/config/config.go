package config

import (
	"os"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/joho/godotenv"
)

// Config carries everything the server needs. It is built once at startup
// and passed explicitly into each component; nothing reads the environment
// after Load returns.
type Config struct {
	Port         string
	DatabaseURL  string
	SigningKey   string
	CookieName   string
	CookieSecure bool
	TokenTTL     time.Duration
	Debug        bool
}

// Load reads the environment, after a best-effort .env load. A missing
// signing key is a startup-fatal condition.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getenv("PORT", "8080"),
		DatabaseURL:  getenv("DATABASE_URL", "file:blog.db"),
		SigningKey:   os.Getenv("JWT_SECRET"),
		CookieName:   getenv("COOKIE_NAME", "access_token"),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
		TokenTTL:     12 * time.Hour,
		Debug:        getenv("APP_ENV", "production") == "development",
	}

	if cfg.SigningKey == "" {
		return Config{}, errors.New("JWT_SECRET is not set, refusing to start", errors.CategoryInternal).
			WithCode(errors.CodeInternal)
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
