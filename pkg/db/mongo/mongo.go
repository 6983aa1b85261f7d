// Package mongo управляет жизненным циклом клиента MongoDB с пулом соединений.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogConnecting    = "connecting to MongoDB"
	LogConnected     = "successfully connected to MongoDB"
	LogDisconnecting = "closing MongoDB connection pool"
)

// Константы для сообщений об ошибках.
const (
	ErrInvalidOptions = "invalid client options"
	ErrConnect        = "failed to connect to MongoDB"
	ErrPing           = "failed to ping MongoDB"
	ErrDisconnect     = "failed to disconnect from MongoDB"
)

// ErrEmptyURI возвращается при пустой строке подключения.
var ErrEmptyURI = errors.New("empty connection string")

// Options параметры клиента.
type Options struct {
	URI            string
	Database       string
	MinPoolSize    uint64
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
}

// Client пул соединений с MongoDB и выбранная база.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
}

// ClientOptions переводит Options в опции драйвера.
func ClientOptions(opts Options) (*options.ClientOptions, error) {
	if opts.URI == "" {
		return nil, ErrEmptyURI
	}
	co := options.Client().
		ApplyURI(opts.URI).
		SetMinPoolSize(opts.MinPoolSize).
		SetMaxPoolSize(opts.MaxPoolSize)
	if opts.ConnectTimeout > 0 {
		co.SetConnectTimeout(opts.ConnectTimeout).
			SetServerSelectionTimeout(opts.ConnectTimeout)
	}
	if err := co.Validate(); err != nil {
		return nil, err
	}
	return co, nil
}

// New подключается к MongoDB и проверяет доступность сервера.
func New(ctx context.Context, opts Options) (*Client, error) {
	log := logger.Log(ctx)
	log.Info(ctx, LogConnecting,
		zap.String("database", opts.Database),
		zap.Uint64("min_pool_size", opts.MinPoolSize),
		zap.Uint64("max_pool_size", opts.MaxPoolSize))

	co, err := ClientOptions(opts)
	if err != nil {
		log.Error(ctx, ErrInvalidOptions, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrInvalidOptions, err)
	}

	client, err := mongo.Connect(ctx, co)
	if err != nil {
		log.Error(ctx, ErrConnect, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrConnect, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		log.Error(ctx, ErrPing, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrPing, err)
	}

	log.Info(ctx, LogConnected)
	return &Client{client: client, database: client.Database(opts.Database)}, nil
}

// Database возвращает рабочую базу.
func (c *Client) Database() *mongo.Database {
	return c.database
}

// Ping проверяет доступность сервера.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%s: %w", ErrPing, err)
	}
	return nil
}

// Close закрывает все соединения пула.
func (c *Client) Close(ctx context.Context) error {
	logger.Log(ctx).Info(ctx, LogDisconnecting)
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrDisconnect, err)
	}
	return nil
}
