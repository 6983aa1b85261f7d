package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"gonotes/internal/notes/ports/repositories"
)

// ErrDuplicateID запись с таким id уже существует.
var ErrDuplicateID = errors.New("document with this id already exists")

// RepositoryFactory создает репозитории над одной базой.
type RepositoryFactory struct {
	db      *mongo.Database
	timeout time.Duration
}

// NewRepositoryFactory создает фабрику. timeout ограничивает каждый запрос, 0 отключает ограничение.
func NewRepositoryFactory(db *mongo.Database, timeout time.Duration) *RepositoryFactory {
	return &RepositoryFactory{db: db, timeout: timeout}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.db, f.timeout)
}

// NoteRepository возвращает репозиторий заметок.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return NewNoteRepository(f.db, f.timeout)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
