package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the bot, loaded from the environment.
type Config struct {
	// Chat platform
	TelegramToken string `env:"TELEGRAM_BOT_TOKEN"`

	// LLM backend
	Provider string `env:"TLDW_PROVIDER" envDefault:"gemini"`
	Model    string `env:"TLDW_MODEL"`
	BaseURL  string `env:"TLDW_BASE_URL"`

	// Redis. RedisURL wins over the discrete host/port settings when set.
	RedisURL      string `env:"REDIS_URL"`
	RedisHost     string `env:"REDIS_HOST" envDefault:"redis"`
	RedisPort     int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Caching
	CacheExpirationHours int           `env:"CACHE_EXPIRATION_HOURS" envDefault:"24"`
	BundleTTL            time.Duration `env:"SUMMARY_BUNDLE_TTL" envDefault:"2h"`
	BundleKeepCount      int           `env:"SUMMARY_KEEP_COUNT" envDefault:"5"`

	// URL backfill search window
	MessageHistoryLimit int `env:"MESSAGE_HISTORY_LIMIT" envDefault:"5"`

	// Rate limiting for the conversation summary command
	UserRateLimit    time.Duration `env:"SUMMARY_USER_RATE_LIMIT" envDefault:"5m"`
	ChannelRateLimit time.Duration `env:"SUMMARY_CHANNEL_RATE_LIMIT" envDefault:"2m"`

	// Upper bound for a single extraction or generation call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"120s"`

	// Health endpoint
	HealthPort string `env:"HEALTH_PORT" envDefault:"8080"`

	// Browser-based extraction
	BrowserHeadless bool   `env:"BROWSER_HEADLESS" envDefault:"true"`
	ChromePath      string `env:"CHROME_PATH"`

	Env string `env:"ENV" envDefault:"development"`
}

// Load reads configuration from the environment, consulting a .env file
// first if one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// CacheTTL returns the TTL applied to single-URL summaries.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheExpirationHours) * time.Hour
}

// RedisAddr returns the host:port pair for the discrete Redis settings.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// IsDevelopment returns true when running outside production.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
