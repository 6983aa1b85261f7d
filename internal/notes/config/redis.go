package config

import (
	"time"

	"gonotes/pkg/db/redis"
)

// RedisConfig настройки кэша пользователей. Пустой адрес отключает кэш.
type RedisConfig struct {
	Addr     string        `env:"NOTES_REDIS_ADDR" env-default:"" env-description:"Redis address, empty disables the user cache"`
	Password string        `env:"NOTES_REDIS_PASSWORD" env-default:""`
	DB       int           `env:"NOTES_REDIS_DB" env-default:"0"`
	PoolSize int           `env:"NOTES_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `env:"NOTES_REDIS_TIMEOUT" env-default:"2s"`
	TTL      time.Duration `env:"NOTES_REDIS_USER_TTL" env-default:"10m"`
}

// Enabled сообщает, настроен ли кэш.
func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// ClientOptions параметры для pkg/db/redis.
func (c *RedisConfig) ClientOptions() redis.Options {
	return redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
		Timeout:  c.Timeout,
	}
}
