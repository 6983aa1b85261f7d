// Package cache содержит кэширование поверх Redis для репозиториев сервиса заметок.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// Константы для логирования.
const (
	ErrorFailedToGet = "failed to get value from redis"
	ErrorFailedToSet = "failed to set value in redis"
)

const keyPrefix = "notes:user:exists:"

// UserRepository запоминает существующих пользователей в Redis.
// Пользователи не удаляются и не меняют id, поэтому положительный ответ
// Exists можно кэшировать. Отрицательный ответ всегда берется из базы.
// GetWithNoteCount не кэшируется: число заметок меняется.
// Ошибки Redis не прерывают запрос: чтение уходит в базовый репозиторий.
type UserRepository struct {
	repositories.UserRepository

	client *redis.Client
	ttl    time.Duration
}

// NewUserRepository оборачивает base.
func NewUserRepository(base repositories.UserRepository, client *redis.Client, ttl time.Duration) *UserRepository {
	return &UserRepository{UserRepository: base, client: client, ttl: ttl}
}

// Key ключ Redis для пользователя.
func Key(userID string) string {
	return keyPrefix + userID
}

// Create сохраняет пользователя и помечает его как существующего.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if err := r.UserRepository.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	r.remember(ctx, user.ID)
	return nil
}

// Exists сначала смотрит в Redis, затем в базовый репозиторий.
func (r *UserRepository) Exists(ctx context.Context, userID string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", "cache.UserRepository.Exists"), zap.String("userID", userID))

	err := r.client.Get(ctx, Key(userID)).Err()
	switch {
	case err == nil:
		log.Debug(ctx, "cache hit")
		return true, nil
	case !errors.Is(err, redis.Nil):
		log.Warn(ctx, ErrorFailedToGet, zap.Error(err))
	}

	exists, err := r.UserRepository.Exists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	if exists {
		r.remember(ctx, userID)
	}
	return exists, nil
}

func (r *UserRepository) remember(ctx context.Context, userID string) {
	if err := r.client.Set(ctx, Key(userID), "1", r.ttl).Err(); err != nil {
		logger.Log(ctx).Warn(ctx, ErrorFailedToSet, zap.String("userID", userID), zap.Error(err))
	}
}
