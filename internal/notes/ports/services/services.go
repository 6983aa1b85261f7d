// Package services описывает сервисы, которые HTTP-слой получает от приложения.
package services

import (
	"context"

	"gonotes/internal/notes/domain/entities"
	"gonotes/pkg/option"
)

// UserService операции над пользователями.
type UserService interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	CreateUser(ctx context.Context, firstName, lastName, email string) (*entities.User, error)
	GetUserWithNoteCount(ctx context.Context, userID string) (option.Option[entities.UserWithNoteCount], error)
}

// NoteService операции над заметками.
type NoteService interface {
	CreateNote(ctx context.Context, userID, title, text string) (*entities.Note, error)
	ListNotes(ctx context.Context, userID, date string) ([]entities.NoteSummary, error)
	GetNoteWithUser(ctx context.Context, userID, noteID string) (option.Option[entities.NoteWithUser], error)
	ToggleStatus(ctx context.Context, userID, noteID string) (entities.NoteStatus, error)
}

// HealthChecker проверяет доступность хранилища.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
