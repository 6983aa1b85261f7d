package config

import (
	"net/url"
	"time"

	"gonotes/pkg/db/mongo"
)

// MongoConfig настройки подключения к MongoDB.
type MongoConfig struct {
	URI            string        `env:"MONGO_CONNECTION_STRING" env-default:"mongodb://localhost:27017" env-description:"MongoDB connection string"`
	Database       string        `env:"NOTES_MONGO_DATABASE" env-default:"Project1"`
	MinPoolSize    uint64        `env:"NOTES_MONGO_MIN_POOL_SIZE" env-default:"0"`
	MaxPoolSize    uint64        `env:"NOTES_MONGO_MAX_POOL_SIZE" env-default:"10"`
	ConnectTimeout time.Duration `env:"NOTES_MONGO_CONNECT_TIMEOUT" env-default:"10s"`
	QueryTimeout   time.Duration `env:"NOTES_MONGO_QUERY_TIMEOUT" env-default:"5s"`
}

// ClientOptions параметры для pkg/db/mongo.
func (c *MongoConfig) ClientOptions() mongo.Options {
	return mongo.Options{
		URI:            c.URI,
		Database:       c.Database,
		MinPoolSize:    c.MinPoolSize,
		MaxPoolSize:    c.MaxPoolSize,
		ConnectTimeout: c.ConnectTimeout,
	}
}

// RedactedURI строка подключения без пароля, для логов.
func (c *MongoConfig) RedactedURI() string {
	u, err := url.Parse(c.URI)
	if err != nil {
		return "<invalid>"
	}
	return u.Redacted()
}
