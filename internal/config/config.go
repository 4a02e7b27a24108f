package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr         = ":8080"
	defaultDatabaseURL  = "lumina.db"
	defaultGeminiModel  = "gemini-2.5-flash"
	defaultGeminiURL    = "https://generativelanguage.googleapis.com"
	defaultPaymentDelay = "1500ms"
	defaultSessionTTL   = "30m"
)

// Config is the API server runtime configuration, loaded from the
// environment with sensible local-dev defaults. GEMINI_API_KEY may be empty:
// the concierge then answers with its unavailable message instead of
// recommendations, which is a supported mode, not an error.
type Config struct {
	AppEnv        string
	Addr          string
	DatabaseURL   string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	PaymentDelay  time.Duration
	SessionTTL    time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = envOrDefault("ADDR", defaultAddr)
	cfg.DatabaseURL = envOrDefault("DATABASE_URL", defaultDatabaseURL)

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("API_KEY")
	}
	cfg.GeminiModel = envOrDefault("GEMINI_MODEL", defaultGeminiModel)
	cfg.GeminiBaseURL = envOrDefault("GEMINI_BASE_URL", defaultGeminiURL)

	var err error
	cfg.PaymentDelay, err = envDuration("PAYMENT_PROCESSING_DELAY", defaultPaymentDelay)
	if err != nil {
		return nil, err
	}
	if cfg.PaymentDelay < 0 {
		return nil, fmt.Errorf("PAYMENT_PROCESSING_DELAY must not be negative")
	}

	cfg.SessionTTL, err = envDuration("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}

	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func envDuration(name, def string) (time.Duration, error) {
	raw := envOrDefault(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", name, raw, err)
	}
	return d, nil
}
