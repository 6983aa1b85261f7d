package config

import (
	"fmt"
	"strings"
	"time"
)

// HTTPConfig настройки HTTP-сервера.
type HTTPConfig struct {
	Host         string        `env:"NOTES_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `env:"PORT" env-default:"3000" env-description:"HTTP listen port"`
	ReadTimeout  time.Duration `env:"NOTES_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `env:"NOTES_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	CORSOrigins  string        `env:"NOTES_HTTP_CORS_ORIGINS" env-default:"*"`
}

// GetAddress возвращает адрес в формате host:port.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AllowedOrigins возвращает список разрешенных CORS-источников.
func (c *HTTPConfig) AllowedOrigins() []string {
	origins := make([]string, 0)
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
