package service

import (
	"context"
	"sort"

	"bookcatalog/models"
)

// Translate returns the book with its text attributes rendered in the target
// language, computing and memoizing the rendering on first request.
//
// A language entry, once present in the record's translations map, is served
// as-is forever: later edits to the source text are not reflected and no
// freshness check is made. Two concurrent first requests for the same
// language may both translate and both write; last write wins.
func (s *Books) Translate(ctx context.Context, idRaw, language string) (models.Book, error) {
	if language == "" {
		return nil, errf(KindMissingParameter, "language query parameter is required")
	}
	id, ok := parseBookID(idRaw)
	if !ok {
		return nil, errf(KindMissingParameter, "missing or invalid book id")
	}
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		return nil, wrapf(KindStore, err, "failed to load book")
	}
	if book == nil {
		return nil, errf(KindNotFound, "book not found")
	}

	translations := book.Translations()
	if _, ok := translations[language]; ok {
		return book, nil
	}

	// All-or-nothing: any upstream failure aborts before anything is written.
	attrs := book.TextAttributes()
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	translated := make(map[string]string, len(attrs))
	for _, k := range keys {
		text, err := s.translator.Translate(ctx, attrs[k], language)
		if err != nil {
			return nil, wrapf(KindTranslation, err, "error translating text")
		}
		translated[k] = text
	}
	translations[language] = translated

	if _, err := s.store.UpdateBookAttributes(ctx, id, map[string]any{
		models.AttrTranslations: translations,
	}); err != nil {
		return nil, wrapf(KindStore, err, "failed to save translations")
	}

	result := book.Clone()
	result[models.AttrTranslations] = translations
	return result, nil
}
