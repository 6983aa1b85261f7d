// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
	"gonotes/pkg/option"
)

// UserUseCase бизнес-логика работы с пользователями.
type UserUseCase struct {
	userRepo repositories.UserRepository
	settings
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo repositories.UserRepository, opts ...Option) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		settings: newSettings(opts),
	}
}

// ListUsers возвращает всех пользователей.
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUser проверяет и сохраняет нового пользователя.
func (uc *UserUseCase) CreateUser(ctx context.Context, firstName, lastName, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserUseCase.CreateUser"))

	user := entities.NewUser(uc.newID(), firstName, lastName, email)
	if err := uc.validator.Struct(user); err != nil {
		log.Debug(ctx, "user rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info(ctx, "user created", zap.String("userID", user.ID))
	return user, nil
}

// GetUserWithNoteCount возвращает пользователя с числом заметок, если он есть.
func (uc *UserUseCase) GetUserWithNoteCount(ctx context.Context, userID string) (option.Option[entities.UserWithNoteCount], error) {
	user, err := uc.userRepo.GetWithNoteCount(ctx, userID)
	if err != nil {
		return option.None[entities.UserWithNoteCount](), fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
