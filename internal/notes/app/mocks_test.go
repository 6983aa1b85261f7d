package app_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"gonotes/internal/notes/domain/entities"
	"gonotes/pkg/option"
)

var ErrDatabaseOperation = errors.New("database error")

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepository) ListByUser(ctx context.Context, filter entities.NoteFilter) ([]entities.NoteSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.NoteSummary), args.Error(1)
}

func (m *mockNoteRepository) GetWithUser(ctx context.Context, userID, noteID string) (option.Option[entities.NoteWithUser], error) {
	args := m.Called(ctx, userID, noteID)
	return args.Get(0).(option.Option[entities.NoteWithUser]), args.Error(1)
}

func (m *mockNoteRepository) ToggleDone(ctx context.Context, userID, noteID string) (option.Option[entities.NoteStatus], error) {
	args := m.Called(ctx, userID, noteID)
	return args.Get(0).(option.Option[entities.NoteStatus]), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) List(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Exists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) GetWithNoteCount(ctx context.Context, userID string) (option.Option[entities.UserWithNoteCount], error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(option.Option[entities.UserWithNoteCount]), args.Error(1)
}
