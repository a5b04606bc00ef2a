package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingCredential means no token was supplied at all.
	ErrMissingCredential = errors.New("authorization token missing")
	// ErrInvalidCredential means the token could not be decoded or carries
	// no subject claim.
	ErrInvalidCredential = errors.New("invalid token")
)

// Identity is the per-request caller identity. It is never persisted; the
// subject is compared against a book's user_id for mutation rights.
type Identity struct {
	Subject string
}

// Resolver decodes a bearer credential into an Identity. The signature is
// deliberately NOT verified: the edge is trusted to have authenticated the
// caller, and this resolver only reads the subject claim. A verifying
// resolver can replace it without touching callers.
type Resolver struct {
	parser *jwt.Parser
}

func NewResolver() *Resolver {
	return &Resolver{parser: jwt.NewParser()}
}

// Resolve decodes raw and extracts the subject claim. An empty credential
// yields ErrMissingCredential; a malformed token or an absent/empty subject
// yields ErrInvalidCredential. Pure and synchronous.
func (r *Resolver) Resolve(raw string) (Identity, error) {
	if raw == "" {
		return Identity{}, ErrMissingCredential
	}
	claims := jwt.MapClaims{}
	if _, _, err := r.parser.ParseUnverified(raw, claims); err != nil {
		return Identity{}, ErrInvalidCredential
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Identity{}, ErrInvalidCredential
	}
	return Identity{Subject: sub}, nil
}

// CredentialFromRequest extracts the raw token from the Authorization
// header or, failing that, the "token" cookie. Returns "" when neither is
// present. A "Bearer " prefix on the header is tolerated.
func CredentialFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if rest, ok := strings.CutPrefix(h, "Bearer "); ok {
			return rest
		}
		return h
	}
	if c, err := r.Cookie("token"); err == nil && c.Value != "" {
		return c.Value
	}
	return ""
}
