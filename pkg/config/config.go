package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process-wide configuration, parsed once at startup and passed
// by reference into the constructors that need it. Nothing reads the
// environment after Load returns.
type Config struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`

	DatabaseURL    string `env:"DATABASE_URL"`
	DatabasePath   string `env:"DATABASE_PATH" envDefault:"database.db"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"db/migrations"`

	AccessTokenSecret  string        `env:"ACCESS_TOKEN_SECRET,notEmpty"`
	RefreshTokenSecret string        `env:"REFRESH_TOKEN_SECRET,notEmpty"`
	AccessTokenTTL     time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTokenTTL    time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`
	BcryptCost         int           `env:"BCRYPT_COST" envDefault:"10"`

	RedisAddr string `env:"REDIS_ADDR"`

	MetricsPort  string `env:"METRICS_PORT" envDefault:"9091"`
	OTLPEndpoint string `env:"OTLP_ENDPOINT" envDefault:"localhost:4317"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		return nil, fmt.Errorf("access and refresh token secrets must differ")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
