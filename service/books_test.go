package service

import (
	"context"
	"testing"

	"bookcatalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dune(owner string) models.Book {
	return models.Book{
		"id":       float64(7),
		"title":    "Dune",
		"overview": "Desert planet politics",
		"user_id":  owner,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps owner from identity", func(t *testing.T) {
		store := newFakeBookStore()
		s := newBooks(t, store, nil)

		created, err := s.Create(ctx, "u1", models.Book{
			"id":      float64(7),
			"title":   "Dune",
			"user_id": "somebody-else",
		})
		require.NoError(t, err)
		assert.Equal(t, "u1", created.Owner())
		assert.Equal(t, "u1", store.books[7].Owner())
	})

	t.Run("missing credential before store access", func(t *testing.T) {
		store := newFakeBookStore()
		s := newBooks(t, store, nil)

		_, err := s.Create(ctx, "", dune("u1"))
		assert.Equal(t, KindMissingCredential, KindOf(err))
		assert.Zero(t, store.calls)
	})

	t.Run("invalid credential", func(t *testing.T) {
		store := newFakeBookStore()
		s := newBooks(t, store, nil)

		_, err := s.Create(ctx, "bad-token", dune("u1"))
		assert.Equal(t, KindInvalidCredential, KindOf(err))
		assert.Zero(t, store.calls)
	})

	t.Run("missing body", func(t *testing.T) {
		store := newFakeBookStore()
		s := newBooks(t, store, nil)

		_, err := s.Create(ctx, "u1", nil)
		assert.Equal(t, KindMissingParameter, KindOf(err))
		assert.Zero(t, store.calls)
	})

	t.Run("shape violation carries diagnostics", func(t *testing.T) {
		store := newFakeBookStore()
		s := newBooks(t, store, nil)

		_, err := s.Create(ctx, "u1", models.Book{"id": "seven"})
		require.Equal(t, KindValidation, KindOf(err))
		assert.NotEmpty(t, err.(*Error).Diagnostics)
		assert.Zero(t, store.calls)
	})

	t.Run("duplicate id overwrites", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		_, err := s.Create(ctx, "u2", models.Book{"id": float64(7), "title": "Dune, again"})
		require.NoError(t, err)
		assert.Equal(t, "Dune, again", store.books[7]["title"])
		assert.Equal(t, "u2", store.books[7].Owner())
	})

	t.Run("store failure wrapped", func(t *testing.T) {
		store := newFakeBookStore()
		store.putErr = errBoom
		s := newBooks(t, store, nil)

		_, err := s.Create(ctx, "u1", dune("u1"))
		assert.Equal(t, KindStore, KindOf(err))
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("only supplied keys change", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		identity, err := s.Update(ctx, "u1", "7", models.Book{"title": "Dune Messiah"})
		require.NoError(t, err)
		assert.Equal(t, "u1", identity.Subject)

		got := store.books[7]
		assert.Equal(t, "Dune Messiah", got["title"])
		assert.Equal(t, "Desert planet politics", got["overview"])
		assert.Equal(t, "u1", got.Owner())

		require.Len(t, store.updates, 1)
		assert.Equal(t, map[string]any{"title": "Dune Messiah"}, store.updates[0])
	})

	t.Run("id attribute is immutable", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		_, err := s.Update(ctx, "u1", "7", models.Book{"id": float64(99), "title": "Dune Messiah"})
		require.NoError(t, err)
		require.Len(t, store.updates, 1)
		assert.NotContains(t, store.updates[0], "id")
	})

	t.Run("invalid identifier before store access", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		for _, idRaw := range []string{"", "abc", "0", "-7", "7.5"} {
			_, err := s.Update(ctx, "u1", idRaw, models.Book{"title": "x"})
			assert.Equal(t, KindMissingIdentifier, KindOf(err), "id %q", idRaw)
		}
		assert.Zero(t, store.calls)
	})

	t.Run("full shape validation applies to partial body", func(t *testing.T) {
		// The Book shape requires title, so a partial body without it fails
		// even though updates are otherwise free to supply any subset.
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		_, err := s.Update(ctx, "u1", "7", models.Book{"overview": "revised"})
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Zero(t, store.calls)
	})

	t.Run("validation precedes identity resolution", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		_, err := s.Update(ctx, "", "7", models.Book{"overview": "revised"})
		assert.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("missing credential", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		_, err := s.Update(ctx, "", "7", models.Book{"title": "x"})
		assert.Equal(t, KindMissingCredential, KindOf(err))
		assert.Zero(t, store.calls)
	})

	t.Run("not found", func(t *testing.T) {
		store := newFakeBookStore()
		s := newBooks(t, store, nil)

		_, err := s.Update(ctx, "u1", "7", models.Book{"title": "x"})
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("non-owner is forbidden and record untouched", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		_, err := s.Update(ctx, "u2", "7", models.Book{"title": "Hijacked"})
		assert.Equal(t, KindForbidden, KindOf(err))
		assert.Empty(t, store.updates)
		assert.Equal(t, "Dune", store.books[7]["title"])
	})

	t.Run("owner comparison is strict", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		_, err := s.Update(ctx, "U1", "7", models.Book{"title": "x"})
		assert.Equal(t, KindForbidden, KindOf(err))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can delete", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		require.NoError(t, s.Delete(ctx, "u1", "7"))
		assert.NotContains(t, store.books, int64(7))
	})

	t.Run("invalid identifier before store access", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		err := s.Delete(ctx, "u1", "seven")
		assert.Equal(t, KindMissingIdentifier, KindOf(err))
		assert.Zero(t, store.calls)
	})

	t.Run("missing credential before store access", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		err := s.Delete(ctx, "", "7")
		assert.Equal(t, KindMissingCredential, KindOf(err))
		assert.Zero(t, store.calls)
	})

	t.Run("not found", func(t *testing.T) {
		s := newBooks(t, newFakeBookStore(), nil)
		err := s.Delete(ctx, "u1", "7")
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("non-owner is forbidden and record kept", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)

		err := s.Delete(ctx, "u2", "7")
		assert.Equal(t, KindForbidden, KindOf(err))
		assert.Contains(t, store.books, int64(7))
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		s := newBooks(t, newFakeBookStore(dune("u1")), nil)
		book, err := s.Get(ctx, "7")
		require.NoError(t, err)
		assert.Equal(t, "Dune", book["title"])
	})

	t.Run("invalid id", func(t *testing.T) {
		store := newFakeBookStore(dune("u1"))
		s := newBooks(t, store, nil)
		_, err := s.Get(ctx, "x")
		assert.Equal(t, KindMissingIdentifier, KindOf(err))
		assert.Zero(t, store.calls)
	})

	t.Run("not found", func(t *testing.T) {
		s := newBooks(t, newFakeBookStore(), nil)
		_, err := s.Get(ctx, "8")
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("store failure wrapped", func(t *testing.T) {
		store := newFakeBookStore()
		store.getErr = errBoom
		s := newBooks(t, store, nil)
		_, err := s.Get(ctx, "7")
		assert.Equal(t, KindStore, KindOf(err))
	})
}

// Create → update by stranger → update by owner → get, per the acceptance
// scenario for the whole mutation flow.
func TestMutationScenario(t *testing.T) {
	ctx := context.Background()
	store := newFakeBookStore()
	s := newBooks(t, store, nil)

	_, err := s.Create(ctx, "u1", models.Book{"id": float64(7), "title": "Dune"})
	require.NoError(t, err)

	_, err = s.Update(ctx, "u2", "7", models.Book{"title": "Dune Messiah"})
	require.Equal(t, KindForbidden, KindOf(err))
	assert.Equal(t, "Dune", store.books[7]["title"])

	_, err = s.Update(ctx, "u1", "7", models.Book{"title": "Dune Messiah"})
	require.NoError(t, err)

	book, err := s.Get(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", book["title"])
}
