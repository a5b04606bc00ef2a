package service

import (
	"context"
	"errors"
	"testing"

	"bookcatalog/auth"
	"bookcatalog/models"
	"bookcatalog/schema"

	"github.com/stretchr/testify/require"
)

// fakeBookStore keeps books in memory and counts every store access so
// tests can assert that guard failures touch the store zero times.
type fakeBookStore struct {
	books map[int64]models.Book

	calls   int
	updates []map[string]any

	getErr    error
	putErr    error
	updateErr error
	deleteErr error
}

func newFakeBookStore(books ...models.Book) *fakeBookStore {
	s := &fakeBookStore{books: make(map[int64]models.Book)}
	for _, b := range books {
		id, _ := b.ID()
		s.books[id] = b
	}
	return s
}

func (s *fakeBookStore) GetBook(_ context.Context, id int64) (models.Book, error) {
	s.calls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	b, ok := s.books[id]
	if !ok {
		return nil, nil
	}
	return b.Clone(), nil
}

func (s *fakeBookStore) PutBook(_ context.Context, book models.Book) error {
	s.calls++
	if s.putErr != nil {
		return s.putErr
	}
	id, _ := book.ID()
	s.books[id] = book.Clone()
	return nil
}

func (s *fakeBookStore) UpdateBookAttributes(_ context.Context, id int64, attrs map[string]any) (models.Book, error) {
	s.calls++
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.updates = append(s.updates, attrs)
	b, ok := s.books[id]
	if !ok {
		b = models.Book{models.AttrID: float64(id)}
	}
	b = b.Clone()
	for k, v := range attrs {
		b[k] = v
	}
	s.books[id] = b
	return b.Clone(), nil
}

func (s *fakeBookStore) DeleteBook(_ context.Context, id int64) error {
	s.calls++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.books, id)
	return nil
}

// fakeResolver treats the raw credential itself as the subject; "" is a
// missing credential and anything prefixed "bad" fails to decode.
type fakeResolver struct{}

func (fakeResolver) Resolve(raw string) (auth.Identity, error) {
	switch {
	case raw == "":
		return auth.Identity{}, auth.ErrMissingCredential
	case len(raw) >= 3 && raw[:3] == "bad":
		return auth.Identity{}, auth.ErrInvalidCredential
	default:
		return auth.Identity{Subject: raw}, nil
	}
}

// fakeTranslator appends the language tag so outputs are recognizable.
type fakeTranslator struct {
	calls int
	err   error
}

func (t *fakeTranslator) Translate(_ context.Context, text, lang string) (string, error) {
	t.calls++
	if t.err != nil {
		return "", t.err
	}
	return text + " [" + lang + "]", nil
}

type fakeCastStore struct {
	plans   []LookupPlan
	members []models.CastMember
	err     error
}

func (s *fakeCastStore) QueryCastMembers(_ context.Context, plan LookupPlan) ([]models.CastMember, error) {
	s.plans = append(s.plans, plan)
	if s.err != nil {
		return nil, s.err
	}
	return s.members, nil
}

var errBoom = errors.New("boom")

func newBooks(t *testing.T, store *fakeBookStore, translator Translator) *Books {
	t.Helper()
	v, err := schema.NewValidator()
	require.NoError(t, err)
	if translator == nil {
		translator = &fakeTranslator{}
	}
	return NewBooks(store, v, fakeResolver{}, translator)
}
