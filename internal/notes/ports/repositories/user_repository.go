package repositories

import (
	"context"

	"gonotes/internal/notes/domain/entities"
	"gonotes/pkg/option"
)

// UserRepository хранилище пользователей.
type UserRepository interface {
	List(ctx context.Context) ([]entities.User, error)
	Create(ctx context.Context, user *entities.User) error
	Exists(ctx context.Context, userID string) (bool, error)
	GetWithNoteCount(ctx context.Context, userID string) (option.Option[entities.UserWithNoteCount], error)
}
