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

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
	userRepo repositories.UserRepository
	settings
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository, userRepo repositories.UserRepository, opts ...Option) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
		userRepo: userRepo,
		settings: newSettings(opts),
	}
}

// CreateNote создает новую заметку пользователя userID.
// Отсутствие пользователя важнее ошибок проверки полей.
func (uc *NoteUseCase) CreateNote(ctx context.Context, userID, title, text string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.CreateNote"))

	note := entities.NewNote(uc.newID(), userID, title, text, uc.now())
	verr := uc.validator.Struct(note)

	exists := false
	if userID != "" {
		var err error
		if exists, err = uc.userRepo.Exists(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to look up note owner: %w", err)
		}
	}
	if !exists {
		log.Debug(ctx, "note owner not found", zap.String("userID", userID))
		return nil, ErrUserNotFound
	}
	if verr != nil {
		log.Debug(ctx, "note rejected", zap.Error(verr))
		return nil, fmt.Errorf("%w: %w", ErrValidation, verr)
	}

	if err := uc.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Info(ctx, "note created", zap.String("noteID", note.ID), zap.String("userID", userID))
	return note, nil
}

// ListNotes возвращает заметки пользователя. Непустой date в формате
// YYYY-MM-DD ограничивает выборку этим днем.
func (uc *NoteUseCase) ListNotes(ctx context.Context, userID, date string) ([]entities.NoteSummary, error) {
	filter := entities.NoteFilter{UserID: userID}
	if date != "" {
		day, err := entities.DayBounds(date, uc.location)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
		}
		filter.Day = option.Some(day)
	}

	notes, err := uc.noteRepo.ListByUser(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// GetNoteWithUser возвращает заметку вместе с владельцем, если она есть.
func (uc *NoteUseCase) GetNoteWithUser(ctx context.Context, userID, noteID string) (option.Option[entities.NoteWithUser], error) {
	note, err := uc.noteRepo.GetWithUser(ctx, userID, noteID)
	if err != nil {
		return option.None[entities.NoteWithUser](), fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// ToggleStatus инвертирует done у заметки и возвращает новое значение.
func (uc *NoteUseCase) ToggleStatus(ctx context.Context, userID, noteID string) (entities.NoteStatus, error) {
	status, err := uc.noteRepo.ToggleDone(ctx, userID, noteID)
	if err != nil {
		return entities.NoteStatus{}, fmt.Errorf("failed to toggle note status: %w", err)
	}

	st, ok := status.Get()
	if !ok {
		return entities.NoteStatus{}, ErrNoteNotFound
	}

	logger.Log(ctx).Info(ctx, "note status toggled",
		zap.String("noteID", noteID), zap.Bool("done", st.Done))
	return st, nil
}
