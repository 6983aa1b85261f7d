package config

import (
	"gonotes/pkg/logger"
)

// LoggingConfig настройки логирования.
type LoggingConfig struct {
	Level string `env:"NOTES_LOGGER_LEVEL" env-default:"info"`
	Mode  string `env:"NOTES_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment переводит режим в logger.Environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == "production" {
		return logger.Production
	}
	return logger.Development
}
