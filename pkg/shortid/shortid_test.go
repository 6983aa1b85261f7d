package shortid_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"gonotes/pkg/shortid"
)

func TestNew(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := shortid.New()
		assert.Len(t, id, shortid.Length)
		assertAlphabet(t, id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestFromUUID(t *testing.T) {
	t.Run("zero uuid is all padding", func(t *testing.T) {
		assert.Equal(t, "1111111111111111111111", shortid.FromUUID(uuid.Nil))
	})

	t.Run("max uuid fits the fixed length", func(t *testing.T) {
		var u uuid.UUID
		for i := range u {
			u[i] = 0xff
		}
		id := shortid.FromUUID(u)
		assert.Len(t, id, shortid.Length)
		assertAlphabet(t, id)
	})

	t.Run("deterministic", func(t *testing.T) {
		u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		assert.Equal(t, shortid.FromUUID(u), shortid.FromUUID(u))
	})
}

func assertAlphabet(t *testing.T, id string) {
	t.Helper()
	for _, r := range id {
		assert.True(t, strings.ContainsRune(shortid.Alphabet, r), "unexpected rune %q in %s", r, id)
	}
}
