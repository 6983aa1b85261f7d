// Package db подключает сервис заметок к MongoDB и готовит коллекции.
package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/mongodb"
	"gonotes/internal/notes/config"
	pkgmongo "gonotes/pkg/db/mongo"
	"gonotes/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogDBInitializing = "initializing notes database"
	LogDBInitialized  = "notes database initialized successfully"
)

// Константы для сообщений об ошибках.
const (
	ErrDBConnection      = "failed to connect to notes database"
	ErrDBIndexes         = "failed to ensure notes database indexes"
	ErrDBCheckConnection = "error checking the database connection"
)

// DB соединение с базой сервиса заметок.
type DB struct {
	client *pkgmongo.Client
}

// New подключается к базе и создает недостающие индексы.
func New(ctx context.Context, cfg *config.MongoConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("uri", cfg.RedactedURI()),
		zap.String("database", cfg.Database),
		zap.Uint64("min_pool_size", cfg.MinPoolSize),
		zap.Uint64("max_pool_size", cfg.MaxPoolSize))

	client, err := pkgmongo.New(ctx, cfg.ClientOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	if err := mongodb.EnsureIndexes(ctx, client.Database()); err != nil {
		_ = client.Close(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("%s: %w", ErrDBIndexes, err)
	}

	log.Info(ctx, LogDBInitialized)

	return &DB{client: client}, nil
}

// Close закрывает пул соединений.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Close(ctx)
}

// Database возвращает рабочую базу.
func (db *DB) Database() *mongo.Database {
	return db.client.Database()
}

// Ping проверяет соединение с базой данных.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.client.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrDBCheckConnection, err)
	}
	return nil
}
