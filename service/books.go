package service

import (
	"context"
	"errors"
	"strconv"

	"bookcatalog/auth"
	"bookcatalog/models"
	"bookcatalog/schema"
)

// Books orchestrates the owner-gated book operations. It holds no per-request
// state; every dependency is injected and safe for concurrent use.
type Books struct {
	store      BookStore
	validator  ShapeValidator
	resolver   IdentityResolver
	translator Translator
}

func NewBooks(store BookStore, validator ShapeValidator, resolver IdentityResolver, translator Translator) *Books {
	return &Books{store: store, validator: validator, resolver: resolver, translator: translator}
}

// Create stamps the resolved caller as owner (any caller-supplied user_id is
// discarded), validates the result against the Book shape and persists it.
// A duplicate id silently overwrites, matching the store's put semantics.
func (s *Books) Create(ctx context.Context, rawCred string, body models.Book) (models.Book, error) {
	identity, err := s.resolveIdentity(rawCred)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errf(KindMissingParameter, "missing request body")
	}
	book := body.Clone()
	delete(book, models.AttrUserID)
	book[models.AttrUserID] = identity.Subject
	if err := s.validateBook(book); err != nil {
		return nil, err
	}
	if err := s.store.PutBook(ctx, book); err != nil {
		return nil, wrapf(KindStore, err, "failed to save book")
	}
	return book, nil
}

// Get fetches a book by its raw path identifier.
func (s *Books) Get(ctx context.Context, idRaw string) (models.Book, error) {
	id, ok := parseBookID(idRaw)
	if !ok {
		return nil, errf(KindMissingIdentifier, "missing or invalid book id")
	}
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		return nil, wrapf(KindStore, err, "failed to load book")
	}
	if book == nil {
		return nil, errf(KindNotFound, "no book found with the given id")
	}
	return book, nil
}

// Update applies a partial mutation: every top-level key present in body is
// set on the stored record in a single write, all other keys untouched. The
// body is validated against the full Book shape even though it may be
// partial, and the id attribute is immutable (stripped if supplied). Only
// the record's owner may update it.
func (s *Books) Update(ctx context.Context, rawCred, idRaw string, body models.Book) (auth.Identity, error) {
	id, ok := parseBookID(idRaw)
	if !ok {
		return auth.Identity{}, errf(KindMissingIdentifier, "missing or invalid book id")
	}
	if body == nil {
		body = models.Book{}
	}
	partial := body.Clone()
	delete(partial, models.AttrID)
	if err := s.validateBook(partial); err != nil {
		return auth.Identity{}, err
	}
	identity, err := s.resolveIdentity(rawCred)
	if err != nil {
		return auth.Identity{}, err
	}
	existing, err := s.store.GetBook(ctx, id)
	if err != nil {
		return auth.Identity{}, wrapf(KindStore, err, "failed to load book")
	}
	if existing == nil {
		return auth.Identity{}, errf(KindNotFound, "book not found")
	}
	if existing.Owner() != identity.Subject {
		return auth.Identity{}, errf(KindForbidden, "you are not authorized to update this book")
	}
	if _, err := s.store.UpdateBookAttributes(ctx, id, partial); err != nil {
		return auth.Identity{}, wrapf(KindStore, err, "failed to update book")
	}
	return identity, nil
}

// Delete removes a book after the same identity and ownership gates as
// Update. Existence is checked once before the remove; there is no re-check
// after it.
func (s *Books) Delete(ctx context.Context, rawCred, idRaw string) error {
	id, ok := parseBookID(idRaw)
	if !ok {
		return errf(KindMissingIdentifier, "missing or invalid book id")
	}
	identity, err := s.resolveIdentity(rawCred)
	if err != nil {
		return err
	}
	existing, err := s.store.GetBook(ctx, id)
	if err != nil {
		return wrapf(KindStore, err, "failed to load book")
	}
	if existing == nil {
		return errf(KindNotFound, "book not found")
	}
	if existing.Owner() != identity.Subject {
		return errf(KindForbidden, "you are not authorized to delete this book")
	}
	if err := s.store.DeleteBook(ctx, id); err != nil {
		return wrapf(KindStore, err, "failed to delete book")
	}
	return nil
}

func (s *Books) validateBook(book models.Book) error {
	res, err := s.validator.Validate(map[string]any(book), schema.ShapeBook)
	if err != nil {
		return wrapf(KindStore, err, "schema validation failed")
	}
	if !res.Valid {
		return &Error{
			Kind:        KindValidation,
			Message:     "incorrect type, must match Book schema",
			Diagnostics: res.Diagnostics,
		}
	}
	return nil
}

func (s *Books) resolveIdentity(rawCred string) (auth.Identity, error) {
	identity, err := s.resolver.Resolve(rawCred)
	if err != nil {
		if errors.Is(err, auth.ErrMissingCredential) {
			return auth.Identity{}, errf(KindMissingCredential, "authorization token missing")
		}
		return auth.Identity{}, errf(KindInvalidCredential, "invalid token")
	}
	return identity, nil
}

// parseBookID accepts positive base-10 integers only. Zero and negatives are
// rejected the same way a falsy parseInt result would be.
func parseBookID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
