package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// devSigningKey is a development-only fallback. Production startup fails
// rather than silently signing tokens with it.
const devSigningKey = "dev-only-signing-key-do-not-use-in-production"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Postgres PostgresConfig
	Redis    RedisConfig
}

type JWTConfig struct {
	Secret          string `env:"JWT_SECRET"`
	Issuer          string `env:"JWT_ISSUER,           default=seguros-api"`
	Audience        string `env:"JWT_AUDIENCE,         default=seguros-api"`
	ExpirationHours int    `env:"JWT_EXPIRATION_HOURS, default=24"`
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/seguros?sslmode=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig
// and applies the signing-key policy.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.applySigningKeyPolicy(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applySigningKeyPolicy fills in the development fallback key, but refuses
// to start a production process without an explicit JWT_SECRET: falling
// back silently would invalidate nothing and sign everything with a
// publicly known string.
func (c *Config) applySigningKeyPolicy() error {
	if c.JWT.Secret != "" {
		return nil
	}
	if c.IsProduction() {
		return fmt.Errorf("config: JWT_SECRET is required when ENV=%s", c.Env)
	}
	c.JWT.Secret = devSigningKey
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
