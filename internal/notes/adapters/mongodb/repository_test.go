package mongodb_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"gonotes/internal/notes/adapters/mongodb"
	"gonotes/internal/notes/domain/entities"
	"gonotes/pkg/option"
)

const queryTimeout = time.Second

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// startedCommand возвращает первую отправленную команду с именем name.
func startedCommand(mt *mtest.T, name string) bson.Raw {
	mt.Helper()
	for evt := mt.GetStartedEvent(); evt != nil; evt = mt.GetStartedEvent() {
		if evt.CommandName == name {
			return evt.Command
		}
	}
	mt.Fatalf("command %q was not sent", name)
	return nil
}

func stage(cmd bson.Raw, i int, keys ...string) bson.RawValue {
	return cmd.Lookup("pipeline").Array().Index(uint(i)).Value().Document().Lookup(keys...)
}

func TestUserRepository(t *testing.T) {
	mt := newMockT(t)
	ns := "Project1." + mongodb.UsersCollection

	mt.Run("List", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "id", Value: "u1"}, {Key: "firstName", Value: "Ann"}, {Key: "lastName", Value: "Lee"}, {Key: "email", Value: "ann@example.com"}},
			bson.D{{Key: "id", Value: "u2"}, {Key: "firstName", Value: "Bob"}, {Key: "lastName", Value: "Ray"}, {Key: "email", Value: "bob@example.com"}},
		))

		users, err := repo.List(t.Context())
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, entities.User{ID: "u1", FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"}, users[0])
		assert.Equal(mt, "u2", users[1].ID)

		cmd := startedCommand(mt, "find")
		assert.Equal(mt, mongodb.UsersCollection, cmd.Lookup("find").StringValue())
		assert.Equal(mt, int64(0), cmd.Lookup("projection", "_id").AsInt64())
	})

	mt.Run("List empty is not nil", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		users, err := repo.List(t.Context())
		require.NoError(mt, err)
		assert.NotNil(mt, users)
		assert.Empty(mt, users)
	})

	mt.Run("List error", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"}))

		_, err := repo.List(t.Context())
		assert.Error(mt, err)
	})

	mt.Run("Create", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Create(t.Context(), entities.NewUser("u1", "Ann", "Lee", "ann@example.com"))
		assert.NoError(mt, err)

		doc := startedCommand(mt, "insert").Lookup("documents").Array().Index(0).Value().Document()
		assert.Equal(mt, "u1", doc.Lookup("id").StringValue())
		assert.Equal(mt, "ann@example.com", doc.Lookup("email").StringValue())
	})

	mt.Run("Create duplicate", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))

		err := repo.Create(t.Context(), entities.NewUser("u1", "Ann", "Lee", "ann@example.com"))
		assert.ErrorIs(mt, err, mongodb.ErrDuplicateID)
	})

	mt.Run("Exists", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))

		ok, err := repo.Exists(t.Context(), "u1")
		require.NoError(mt, err)
		assert.True(mt, ok)

		cmd := startedCommand(mt, "aggregate")
		assert.Equal(mt, mongodb.UsersCollection, cmd.Lookup("aggregate").StringValue())
		assert.Equal(mt, "u1", stage(cmd, 0, "$match", "id").StringValue())
	})

	mt.Run("Exists missing", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		ok, err := repo.Exists(t.Context(), "nope")
		require.NoError(mt, err)
		assert.False(mt, ok)
	})

	mt.Run("GetWithNoteCount", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "id", Value: "u1"}, {Key: "firstName", Value: "Ann"}, {Key: "lastName", Value: "Lee"}, {Key: "email", Value: "ann@example.com"}, {Key: "noteCount", Value: int32(3)}},
		))

		res, err := repo.GetWithNoteCount(t.Context(), "u1")
		require.NoError(mt, err)
		u, ok := res.Get()
		require.True(mt, ok)
		assert.Equal(mt, 3, u.NoteCount)
		assert.Equal(mt, "Ann", u.FirstName)

		cmd := startedCommand(mt, "aggregate")
		assert.Equal(mt, "u1", stage(cmd, 0, "$match", "id").StringValue())
		assert.Equal(mt, mongodb.NotesCollection, stage(cmd, 2, "$lookup", "from").StringValue())
		assert.Equal(mt, "userId", stage(cmd, 2, "$lookup", "foreignField").StringValue())
		assert.Equal(mt, "$notes", stage(cmd, 3, "$project", "noteCount", "$size").StringValue())
	})

	mt.Run("GetWithNoteCount missing", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		res, err := repo.GetWithNoteCount(t.Context(), "nope")
		require.NoError(mt, err)
		assert.False(mt, res.IsSome())
	})
}

func TestNoteRepository(t *testing.T) {
	mt := newMockT(t)
	ns := "Project1." + mongodb.NotesCollection

	mt.Run("Create", func(mt *mtest.T) {
		repo := mongodb.NewNoteRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created := time.UnixMilli(1700000000000)
		err := repo.Create(t.Context(), entities.NewNote("n1", "u1", "T", "body", created))
		assert.NoError(mt, err)

		doc := startedCommand(mt, "insert").Lookup("documents").Array().Index(0).Value().Document()
		assert.Equal(mt, "n1", doc.Lookup("id").StringValue())
		assert.Equal(mt, "u1", doc.Lookup("userId").StringValue())
		assert.False(mt, doc.Lookup("done").Boolean())
		assert.Equal(mt, created.UnixMilli(), doc.Lookup("createdAt").AsInt64())
	})

	mt.Run("Create duplicate", func(mt *mtest.T) {
		repo := mongodb.NewNoteRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))

		err := repo.Create(t.Context(), entities.NewNote("n1", "u1", "T", "body", time.Now()))
		assert.True(mt, errors.Is(err, mongodb.ErrDuplicateID))
	})

	mt.Run("ListByUser", func(mt *mtest.T) {
		repo := mongodb.NewNoteRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "title", Value: "T"}, {Key: "userId", Value: "u1"}, {Key: "createdAt", Value: int64(1700000000000)}, {Key: "done", Value: true}},
		))

		notes, err := repo.ListByUser(t.Context(), entities.NoteFilter{UserID: "u1"})
		require.NoError(mt, err)
		require.Len(mt, notes, 1)
		assert.Equal(mt, entities.NoteSummary{Title: "T", UserID: "u1", CreatedAt: 1700000000000, Done: true}, notes[0])
	})

	mt.Run("ListByUser filters by day", func(mt *mtest.T) {
		repo := mongodb.NewNoteRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		day, err := entities.DayBounds("2024-03-10", time.UTC)
		require.NoError(mt, err)

		_, err = repo.ListByUser(t.Context(), entities.NoteFilter{UserID: "u1", Day: option.Some(day)})
		require.NoError(mt, err)

		cmd := startedCommand(mt, "find")
		assert.Equal(mt, mongodb.NotesCollection, cmd.Lookup("find").StringValue())
		assert.Equal(mt, "u1", cmd.Lookup("filter", "userId").StringValue())
		assert.Equal(mt, day.From, cmd.Lookup("filter", "createdAt", "$gte").AsInt64())
		assert.Equal(mt, day.To, cmd.Lookup("filter", "createdAt", "$lte").AsInt64())
		assert.Equal(mt, int64(0), cmd.Lookup("projection", "_id").AsInt64())
		_, err = cmd.LookupErr("projection", "text")
		assert.Error(mt, err, "list must not return note text")
	})

	mt.Run("ListByUser error", func(mt *mtest.T) {
		repo := mongodb.NewNoteRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"}))

		_, err := repo.ListByUser(t.Context(), entities.NoteFilter{UserID: "u1"})
		assert.Error(mt, err)
	})

	mt.Run("GetWithUser", func(mt *mtest.T) {
		repo := mongodb.NewNoteRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "user", Value: bson.D{{Key: "id", Value: "u1"}, {Key: "firstName", Value: "Ann"}, {Key: "lastName", Value: "Lee"}, {Key: "email", Value: "ann@example.com"}}},
				{Key: "title", Value: "T"},
				{Key: "text", Value: "body"},
				{Key: "done", Value: false},
				{Key: "createdAt", Value: int64(42)},
			},
		))

		res, err := repo.GetWithUser(t.Context(), "u1", "n1")
		require.NoError(mt, err)
		n, ok := res.Get()
		require.True(mt, ok)
		require.NotNil(mt, n.User)
		assert.Equal(mt, "u1", n.User.ID)
		assert.Equal(mt, "body", n.Text)

		cmd := startedCommand(mt, "aggregate")
		assert.Equal(mt, mongodb.NotesCollection, cmd.Lookup("aggregate").StringValue())
		assert.Equal(mt, "n1", stage(cmd, 0, "$match", "id").StringValue())
		assert.Equal(mt, "u1", stage(cmd, 0, "$match", "userId").StringValue())
		assert.Equal(mt, mongodb.UsersCollection, stage(cmd, 2, "$lookup", "from").StringValue())
	})

	mt.Run("GetWithUser missing", func(mt *mtest.T) {
		repo := mongodb.NewNoteRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		res, err := repo.GetWithUser(t.Context(), "u1", "n1")
		require.NoError(mt, err)
		assert.Empty(mt, res.Slice())
	})

	mt.Run("ToggleDone", func(mt *mtest.T) {
		repo := mongodb.NewNoteRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "done", Value: true}}}))

		res, err := repo.ToggleDone(t.Context(), "u1", "n1")
		require.NoError(mt, err)
		st, ok := res.Get()
		require.True(mt, ok)
		assert.True(mt, st.Done)

		cmd := startedCommand(mt, "findAndModify")
		assert.Equal(mt, mongodb.NotesCollection, cmd.Lookup("findAndModify").StringValue())
		assert.Equal(mt, "n1", cmd.Lookup("query", "id").StringValue())
		assert.Equal(mt, "u1", cmd.Lookup("query", "userId").StringValue())
		assert.True(mt, cmd.Lookup("new").Boolean())
		assert.Equal(mt, int64(0), cmd.Lookup("fields", "_id").AsInt64())

		set := cmd.Lookup("update").Array().Index(0).Value().Document()
		assert.Equal(mt, "$done", set.Lookup("$set", "done", "$not").Array().Index(0).Value().StringValue())
	})

	mt.Run("ToggleDone twice restores status", func(mt *mtest.T) {
		repo := mongodb.NewNoteRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "done", Value: true}}}),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "done", Value: false}}}),
		)

		var got []bool
		for range 2 {
			res, err := repo.ToggleDone(t.Context(), "u1", "n1")
			require.NoError(mt, err)
			st, ok := res.Get()
			require.True(mt, ok)
			got = append(got, st.Done)
		}
		assert.Equal(mt, []bool{true, false}, got)

		for range 2 {
			cmd := startedCommand(mt, "findAndModify")
			assert.Equal(mt, "n1", cmd.Lookup("query", "id").StringValue())
			assert.Equal(mt, "u1", cmd.Lookup("query", "userId").StringValue())
		}
	})

	mt.Run("ToggleDone missing", func(mt *mtest.T) {
		repo := mongodb.NewNoteRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		res, err := repo.ToggleDone(t.Context(), "u1", "missing")
		require.NoError(mt, err)
		assert.False(mt, res.IsSome())
	})

	mt.Run("ToggleDone error", func(mt *mtest.T) {
		repo := mongodb.NewNoteRepository(mt.DB, queryTimeout)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"}))

		_, err := repo.ToggleDone(t.Context(), "u1", "n1")
		assert.Error(mt, err)
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := newMockT(t)

	mt.Run("creates indexes on both collections", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())
		assert.NoError(mt, mongodb.EnsureIndexes(t.Context(), mt.DB))
	})

	mt.Run("error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"}))
		assert.Error(mt, mongodb.EnsureIndexes(t.Context(), mt.DB))
	})
}

func TestRepositoryFactory(t *testing.T) {
	mt := newMockT(t)

	mt.Run("builds repositories", func(mt *mtest.T) {
		f := mongodb.NewRepositoryFactory(mt.DB, 0)
		assert.NotNil(mt, f.UserRepository())
		assert.NotNil(mt, f.NoteRepository())
	})
}
