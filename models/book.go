package models

import (
	"encoding/json"
	"strconv"
)

// AttrID is the caller-assigned numeric identifier.
const AttrID = "id"

// AttrUserID is the owner attribute, stamped server-side at creation.
const AttrUserID = "user_id"

// AttrTranslations maps language code to the book's text attributes
// rendered in that language.
const AttrTranslations = "translations"

// Book is an open attribute map. Beyond id, user_id and translations the
// catalog does not enumerate a book's fields: any string-valued attribute
// (title, overview, ...) is free text and participates in translation.
type Book map[string]any

// ID returns the numeric identifier. The second return is false when the
// attribute is absent or not a number. JSON decoding yields float64 and the
// DynamoDB unmarshaller may yield other numeric types, so all are accepted.
func (b Book) ID() (int64, bool) {
	switch v := b[AttrID].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// Owner returns the user_id attribute, or "" when unset.
func (b Book) Owner() string {
	s, _ := b[AttrUserID].(string)
	return s
}

// Translations returns the per-language translation map, never nil. Entries
// decoded from storage or JSON arrive as map[string]any; both that shape and
// the typed shape written by the translation cache are normalized.
func (b Book) Translations() map[string]map[string]string {
	out := make(map[string]map[string]string)
	switch raw := b[AttrTranslations].(type) {
	case map[string]map[string]string:
		for lang, attrs := range raw {
			out[lang] = attrs
		}
	case map[string]any:
		for lang, v := range raw {
			attrs, ok := v.(map[string]any)
			if !ok {
				continue
			}
			entry := make(map[string]string, len(attrs))
			for k, av := range attrs {
				if s, ok := av.(string); ok {
					entry[k] = s
				}
			}
			out[lang] = entry
		}
	}
	return out
}

// TextAttributes returns every string-valued top-level attribute except
// translations itself. These are the fields the translation cache renders
// into a target language.
func (b Book) TextAttributes() map[string]string {
	out := make(map[string]string)
	for k, v := range b {
		if k == AttrTranslations {
			continue
		}
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// Clone returns a shallow copy; nested values are shared.
func (b Book) Clone() Book {
	out := make(Book, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
