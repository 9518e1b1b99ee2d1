package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" env-default:"project-marketplace"`
	ServerPort  int    `env:"SERVER_PORT"  env-default:"8080"`
	StaticDir   string `env:"STATIC_DIR"`

	LogLevel  string `env:"LOG_LEVEL"  env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"json"`

	DatabaseURL       string `env:"DATABASE_URL"`
	MigrationsEnabled bool   `env:"MIGRATIONS_ENABLED" env-default:"true"`

	JWTSecret         string        `env:"JWT_SECRET"`
	AdminUsername     string        `env:"ADMIN_USERNAME"      env-default:"admin"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	AdminPassword     string        `env:"ADMIN_PASSWORD"`
	AdminTokenTTL     time.Duration `env:"ADMIN_TOKEN_TTL"     env-default:"12h"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" env-separator:","`

	ESURL      string `env:"ES_URL"`
	ESUser     string `env:"ES_USER"`
	ESPassword string `env:"ES_PASSWORD"`
	ESIndex    string `env:"ES_INDEX" env-default:"projects"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info("notice: .env file not found, using system environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("missing required env DATABASE_URL"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("missing required env JWT_SECRET"))
	}
	if c.AdminPasswordHash == "" && c.AdminPassword == "" {
		errs = append(errs, errors.New("one of ADMIN_PASSWORD_HASH or ADMIN_PASSWORD is required"))
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid SERVER_PORT %d", c.ServerPort))
	}
	if c.AdminTokenTTL <= 0 {
		errs = append(errs, errors.New("ADMIN_TOKEN_TTL must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}
