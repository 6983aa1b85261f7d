package entities_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/domain/entities"
)

func TestNewNote(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 30, 0, 123_000_000, time.UTC)

	note := entities.NewNote("n1", "u1", "T", "hello", now)

	assert.Equal(t, "n1", note.ID)
	assert.Equal(t, "u1", note.UserID)
	assert.False(t, note.Done)
	assert.Equal(t, now.UnixMilli(), note.CreatedAt)
}

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	t.Run("bounds in given zone", func(t *testing.T) {
		r, err := entities.DayBounds("2024-03-10", loc)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 1, 0, loc).UnixMilli(), r.From)
		assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 0, loc).UnixMilli(), r.To)
	})

	t.Run("inclusive edges", func(t *testing.T) {
		r, err := entities.DayBounds("2024-03-10", time.UTC)
		require.NoError(t, err)

		assert.True(t, r.Contains(r.From))
		assert.True(t, r.Contains(r.To))
		assert.False(t, r.Contains(r.From-1))
		assert.False(t, r.Contains(r.To+1))

		midnight := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).UnixMilli()
		assert.False(t, r.Contains(midnight), "first second of the day is outside the window")
	})

	t.Run("nil location means local", func(t *testing.T) {
		r, err := entities.DayBounds("2024-03-10", nil)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 1, 0, time.Local).UnixMilli(), r.From)
	})

	t.Run("invalid date", func(t *testing.T) {
		for _, in := range []string{"", "2024-13-01", "10.03.2024", "2024-03-10T00:00:00"} {
			_, err := entities.DayBounds(in, time.UTC)
			assert.Error(t, err, in)
		}
	})
}
