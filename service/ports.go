package service

import (
	"context"

	"bookcatalog/auth"
	"bookcatalog/models"
	"bookcatalog/schema"
)

// BookStore is the record-store contract for books. Get returns (nil, nil)
// when the record is absent. UpdateBookAttributes applies a single partial
// write: one SET per supplied top-level key, untouched keys preserved.
type BookStore interface {
	GetBook(ctx context.Context, id int64) (models.Book, error)
	PutBook(ctx context.Context, book models.Book) error
	UpdateBookAttributes(ctx context.Context, id int64, attrs map[string]any) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

// CastMemberStore executes a fully-resolved lookup plan.
type CastMemberStore interface {
	QueryCastMembers(ctx context.Context, plan LookupPlan) ([]models.CastMember, error)
}

// IdentityResolver turns a raw credential into a caller identity.
type IdentityResolver interface {
	Resolve(raw string) (auth.Identity, error)
}

// ShapeValidator checks a candidate object against a named shape.
type ShapeValidator interface {
	Validate(candidate any, shape string) (*schema.Result, error)
}

// Translator renders text into a target language; the source language is
// always auto-detected.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
