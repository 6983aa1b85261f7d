// Package config загружает конфигурацию сервисов из окружения.
//
// Перед чтением переменных подгружается необязательный dotenv-файл,
// значения из него не перекрывают уже заданные переменные окружения.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

const (
	msgLoadingConfiguration = "loading configuration"
	msgConfigurationLoaded  = "configuration loaded successfully"
	msgEnvFileNotFound      = "env file not found, using process environment"

	errLoadEnvFile             = "failed to load env file"
	errFailedLoadConfiguration = "failed to load configuration"
)

// Load читает envFile (если он есть) и заполняет T по тегам env/env-default.
func Load[T any](ctx context.Context, serviceName, envFile string) (*T, error) {
	log := logger.Log(ctx).With(zap.String("service", serviceName))
	log.Info(ctx, msgLoadingConfiguration, zap.String("env_file", envFile))

	if err := loadEnvFile(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Error(ctx, errLoadEnvFile, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errLoadEnvFile, err)
		}
		log.Debug(ctx, msgEnvFileNotFound, zap.String("env_file", envFile))
	}

	var cfg T
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Error(ctx, errFailedLoadConfiguration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded)
	return &cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return fs.ErrNotExist
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return godotenv.Load(path)
}
