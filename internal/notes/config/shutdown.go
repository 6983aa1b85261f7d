package config

import "time"

// ShutdownConfig таймаут корректного завершения в секундах.
type ShutdownConfig struct {
	Timeout int `env:"NOTES_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"5"`
}

// GetTimeout возвращает таймаут как Duration.
func (c *ShutdownConfig) GetTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
