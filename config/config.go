package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"careerportal-api/database"
)

type Config struct {
	Env      string `env:"APP_ENV" env-default:"development" env-description:"development or production"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Server   ServerConfig
	Database database.DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port           string `env:"PORT" env-default:"5000"`
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	// TrustProxyHeaders keys the rate limiter on X-Forwarded-For and friends.
	// Enable it only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool `env:"TRUSTED_PROXY_HEADERS" env-default:"false"`
}

// RedisConfig enables the payment rate limiter. An empty URL disables it.
type RedisConfig struct {
	URL                string        `env:"REDIS_URL"`
	PaymentLimit       int           `env:"PAYMENT_RATE_LIMIT" env-default:"10"`
	PaymentLimitWindow time.Duration `env:"PAYMENT_RATE_WINDOW" env-default:"1m"`
}

type SessionConfig struct {
	Secret string `env:"SESSION_SECRET"`
	Domain string `env:"SESSION_DOMAIN"`
	MaxAge int    `env:"SESSION_MAX_AGE" env-default:"86400"`
	Secure bool   `env:"SESSION_SECURE" env-default:"false"`
}

// AuthConfig protects the recruiter endpoints when JWTSecret is set.
type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	Issuer    string        `env:"JWT_ISSUER" env-default:"careerportal-api"`
	TokenTTL  time.Duration `env:"JWT_TOKEN_TTL" env-default:"12h"`
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	if cfg.Redis.PaymentLimit < 1 {
		return nil, fmt.Errorf("PAYMENT_RATE_LIMIT must be positive, got %d", cfg.Redis.PaymentLimit)
	}
	if cfg.Redis.PaymentLimitWindow <= 0 {
		return nil, fmt.Errorf("PAYMENT_RATE_WINDOW must be positive, got %s", cfg.Redis.PaymentLimitWindow)
	}

	return cfg, nil
}

// Describe returns the help text listing every environment variable.
func Describe() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}
