package service

import "fmt"

// Kind classifies an operation failure. Every expected failure path yields
// one of these; collaborator surprises are wrapped into KindStore or
// KindTranslation at the operation boundary rather than propagated raw.
type Kind string

const (
	KindMissingCredential Kind = "missing_credential"
	KindInvalidCredential Kind = "invalid_credential"
	KindMissingIdentifier Kind = "missing_identifier"
	KindInvalidBookID     Kind = "invalid_book_id"
	KindMissingParameter  Kind = "missing_parameter"
	KindValidation        Kind = "validation_error"
	KindNotFound          Kind = "not_found"
	KindForbidden         Kind = "forbidden"
	KindTranslation       Kind = "translation_error"
	KindStore             Kind = "store_error"
)

// Error is a classified operation failure with a human-readable message and,
// for validation failures, the full diagnostic list.
type Error struct {
	Kind        Kind
	Message     string
	Diagnostics []string
	Err         error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the failure kind, or "" for unclassified errors.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ""
}

func errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapf(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}
