package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/pkg/logger"
	"gonotes/pkg/option"
)

// NoteRepository реализует repositories.NoteRepository.
type NoteRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewNoteRepository создает репозиторий заметок.
func NewNoteRepository(db *mongo.Database, timeout time.Duration) *NoteRepository {
	return &NoteRepository{coll: db.Collection(NotesCollection), timeout: timeout}
}

// Create сохраняет заметку.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", note.UserID))

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, note); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to create note %s: %w", note.ID, ErrDuplicateID)
		}
		log.Error(ctx, "failed to create note", zap.Error(err))
		return fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", note.ID))
	return nil
}

// ListByUser возвращает краткие записи заметок пользователя.
func (r *NoteRepository) ListByUser(ctx context.Context, filter entities.NoteFilter) ([]entities.NoteSummary, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByUser"))
	log.Debug(ctx, "listing notes", zap.String("userID", filter.UserID), zap.Bool("by_day", filter.Day.IsSome()))

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, NotesByUserFilter(filter), options.Find().SetProjection(NoteSummaryProjection))
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes := make([]entities.NoteSummary, 0)
	if err := cur.All(ctx, &notes); err != nil {
		log.Error(ctx, "failed to decode notes", zap.Error(err))
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}

	return notes, nil
}

// GetWithUser возвращает заметку вместе с владельцем.
func (r *NoteRepository) GetWithUser(ctx context.Context, userID, noteID string) (option.Option[entities.NoteWithUser], error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetWithUser"))
	log.Debug(ctx, "getting note", zap.String("noteID", noteID), zap.String("userID", userID))

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Aggregate(ctx, NoteWithUserPipeline(userID, noteID))
	if err != nil {
		log.Error(ctx, "failed to aggregate note", zap.Error(err))
		return option.None[entities.NoteWithUser](), fmt.Errorf("failed to aggregate note: %w", err)
	}

	var rows []entities.NoteWithUser
	if err := cur.All(ctx, &rows); err != nil {
		log.Error(ctx, "failed to decode note", zap.Error(err))
		return option.None[entities.NoteWithUser](), fmt.Errorf("failed to decode note: %w", err)
	}

	return option.FromSlice(rows), nil
}

// ToggleDone атомарно инвертирует done у заметки (userID, noteID)
// и возвращает новое значение.
func (r *NoteRepository) ToggleDone(ctx context.Context, userID, noteID string) (option.Option[entities.NoteStatus], error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ToggleDone"))
	log.Debug(ctx, "toggling note status", zap.String("noteID", noteID), zap.String("userID", userID))

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(NoteStatusProjection)

	var status entities.NoteStatus
	err := r.coll.FindOneAndUpdate(ctx, NoteKeyFilter(userID, noteID), ToggleDoneUpdate(), opts).Decode(&status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return option.None[entities.NoteStatus](), nil
		}
		log.Error(ctx, "failed to toggle note status", zap.Error(err))
		return option.None[entities.NoteStatus](), fmt.Errorf("failed to toggle note status: %w", err)
	}

	return option.Some(status), nil
}
