package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/pkg/logger"
	"gonotes/pkg/option"
)

// UserRepository реализует repositories.UserRepository.
type UserRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(db *mongo.Database, timeout time.Duration) *UserRepository {
	return &UserRepository{coll: db.Collection(UsersCollection), timeout: timeout}
}

// List возвращает всех пользователей в порядке хранения.
func (r *UserRepository) List(ctx context.Context) ([]entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.List"))
	log.Debug(ctx, "listing users")

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetProjection(WithoutObjectID))
	if err != nil {
		log.Error(ctx, "failed to query users", zap.Error(err))
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	users := make([]entities.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		log.Error(ctx, "failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	log.Debug(ctx, "users listed", zap.Int("count", len(users)))
	return users, nil
}

// Create сохраняет пользователя.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.Create"))
	log.Debug(ctx, "creating user", zap.String("userID", user.ID))

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to create user %s: %w", user.ID, ErrDuplicateID)
		}
		log.Error(ctx, "failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Debug(ctx, "user created", zap.String("userID", user.ID))
	return nil
}

// Exists сообщает, есть ли пользователь с таким id.
func (r *UserRepository) Exists(ctx context.Context, userID string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.Exists"))

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, UserByIDFilter(userID), options.Count().SetLimit(1))
	if err != nil {
		log.Error(ctx, "failed to look up user", zap.String("userID", userID), zap.Error(err))
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	return n > 0, nil
}

// GetWithNoteCount возвращает пользователя с числом его заметок.
func (r *UserRepository) GetWithNoteCount(ctx context.Context, userID string) (option.Option[entities.UserWithNoteCount], error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.GetWithNoteCount"))
	log.Debug(ctx, "getting user with note count", zap.String("userID", userID))

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Aggregate(ctx, UserWithNoteCountPipeline(userID))
	if err != nil {
		log.Error(ctx, "failed to aggregate user", zap.Error(err))
		return option.None[entities.UserWithNoteCount](), fmt.Errorf("failed to aggregate user: %w", err)
	}

	var rows []entities.UserWithNoteCount
	if err := cur.All(ctx, &rows); err != nil {
		log.Error(ctx, "failed to decode user", zap.Error(err))
		return option.None[entities.UserWithNoteCount](), fmt.Errorf("failed to decode user: %w", err)
	}

	return option.FromSlice(rows), nil
}
