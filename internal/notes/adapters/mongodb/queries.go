// Package mongodb реализует хранилище сервиса заметок поверх MongoDB.
//
// Пользователи и заметки лежат в коллекциях users и notes, связь
// notes.userId -> users.id проверяется приложением, а не базой.
// Все фильтры и агрегации собираются функциями этого файла.
package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gonotes/internal/notes/domain/entities"
)

// Имена коллекций.
const (
	UsersCollection = "users"
	NotesCollection = "notes"
)

// WithoutObjectID скрывает служебное поле _id.
var WithoutObjectID = bson.D{{Key: "_id", Value: 0}}

// NoteSummaryProjection поля заметки, которые отдает список.
var NoteSummaryProjection = bson.D{
	{Key: "_id", Value: 0},
	{Key: "title", Value: 1},
	{Key: "userId", Value: 1},
	{Key: "createdAt", Value: 1},
	{Key: "done", Value: 1},
}

// NoteStatusProjection поле done после переключения.
var NoteStatusProjection = bson.D{
	{Key: "_id", Value: 0},
	{Key: "done", Value: 1},
}

// UserByIDFilter фильтр пользователя по id.
func UserByIDFilter(userID string) bson.D {
	return bson.D{{Key: "id", Value: userID}}
}

// NoteKeyFilter фильтр заметки по паре (id, userId).
func NoteKeyFilter(userID, noteID string) bson.D {
	return bson.D{
		{Key: "id", Value: noteID},
		{Key: "userId", Value: userID},
	}
}

// NotesByUserFilter фильтр заметок пользователя, при наличии дня
// ограничивает createdAt включительным интервалом.
func NotesByUserFilter(f entities.NoteFilter) bson.D {
	filter := bson.D{{Key: "userId", Value: f.UserID}}
	if day, ok := f.Day.Get(); ok {
		filter = append(filter, bson.E{Key: "createdAt", Value: bson.D{
			{Key: "$gte", Value: day.From},
			{Key: "$lte", Value: day.To},
		}})
	}
	return filter
}

// NoteWithUserPipeline находит заметку и присоединяет первого владельца.
func NoteWithUserPipeline(userID, noteID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: NoteKeyFilter(userID, noteID)}},
		{{Key: "$limit", Value: 1}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: UsersCollection},
			{Key: "localField", Value: "userId"},
			{Key: "foreignField", Value: "id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "user", Value: bson.D{{Key: "$first", Value: "$user"}}},
			{Key: "title", Value: 1},
			{Key: "text", Value: 1},
			{Key: "done", Value: 1},
			{Key: "createdAt", Value: 1},
		}}},
	}
}

// UserWithNoteCountPipeline находит пользователя и считает его заметки.
func UserWithNoteCountPipeline(userID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: UserByIDFilter(userID)}},
		{{Key: "$limit", Value: 1}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: NotesCollection},
			{Key: "localField", Value: "id"},
			{Key: "foreignField", Value: "userId"},
			{Key: "as", Value: "notes"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "id", Value: 1},
			{Key: "firstName", Value: 1},
			{Key: "lastName", Value: 1},
			{Key: "email", Value: 1},
			{Key: "noteCount", Value: bson.D{{Key: "$size", Value: "$notes"}}},
		}}},
	}
}

// ToggleDoneUpdate конвейер обновления, инвертирующий done на стороне сервера.
func ToggleDoneUpdate() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "done", Value: bson.D{{Key: "$not", Value: bson.A{"$done"}}}},
		}}},
	}
}
