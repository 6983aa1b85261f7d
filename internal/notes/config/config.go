// Package config содержит конфигурацию сервиса заметок.
package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	pkgconfig "gonotes/pkg/config"
	"gonotes/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	ServiceName         = "notes"
	EnvFileVariable     = "NOTES_ENV_FILE"
	DefaultEnvFile      = ".env"
	LogConfigLoaded     = "notes service configuration"
	ErrFailedLoadConfig = "failed to load configuration"
	ErrInvalidTimezone  = "invalid timezone"
)

// Config полная конфигурация сервиса.
type Config struct {
	HTTP     HTTPConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Logging  LoggingConfig
	Shutdown ShutdownConfig
	Timezone string `env:"NOTES_TIMEZONE" env-default:"Local" env-description:"IANA zone used to cut calendar days"`
}

// Load читает конфигурацию из окружения и необязательного env-файла.
func Load(ctx context.Context) (*Config, error) {
	envFile, ok := os.LookupEnv(EnvFileVariable)
	if !ok {
		envFile = DefaultEnvFile
	}

	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, envFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("mongo_uri", cfg.Mongo.RedactedURI()),
		zap.String("mongo_database", cfg.Mongo.Database),
		zap.Uint64("mongo_min_pool_size", cfg.Mongo.MinPoolSize),
		zap.Uint64("mongo_max_pool_size", cfg.Mongo.MaxPoolSize),
		zap.Duration("mongo_query_timeout", cfg.Mongo.QueryTimeout),
		zap.Bool("redis_enabled", cfg.Redis.Enabled()),
		zap.String("timezone", loc.String()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}

// Location зона для вычисления границ календарного дня.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrInvalidTimezone, c.Timezone, err)
	}
	return loc, nil
}
