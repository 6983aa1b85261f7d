package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

// Indexes индексы по коллекциям: уникальность id и выборка заметок по дню.
func Indexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("users_id_unique")},
		},
		NotesCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("notes_id_unique")},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}}, Options: options.Index().SetName("notes_user_created")},
		},
	}
}

// EnsureIndexes создает недостающие индексы. Существующие индексы не меняются.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	log := logger.Log(ctx)

	for _, name := range []string{UsersCollection, NotesCollection} {
		models := Indexes()[name]
		created, err := db.Collection(name).Indexes().CreateMany(ctx, models)
		if err != nil {
			log.Error(ctx, "failed to create indexes", zap.String("collection", name), zap.Error(err))
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
		log.Debug(ctx, "indexes ensured", zap.String("collection", name), zap.Strings("indexes", created))
	}
	return nil
}
