// Package repositories определяет интерфейсы хранилища сервиса заметок.
package repositories

import (
	"context"

	"gonotes/internal/notes/domain/entities"
	"gonotes/pkg/option"
)

// NoteRepository хранилище заметок. Каждый метод выполняет один запрос.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) error
	ListByUser(ctx context.Context, filter entities.NoteFilter) ([]entities.NoteSummary, error)
	GetWithUser(ctx context.Context, userID, noteID string) (option.Option[entities.NoteWithUser], error)
	ToggleDone(ctx context.Context, userID, noteID string) (option.Option[entities.NoteStatus], error)
}
