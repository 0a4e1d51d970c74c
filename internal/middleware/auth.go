package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hsolberg/travelmate/internal/domain"
)

// SessionResolver resolves a bearer token to an active session.
// Satisfied by service.AuthService.
type SessionResolver interface {
	SessionByToken(ctx context.Context, token string) (domain.Session, error)
}

type ownerIDKey struct{}

// NewSessionAuth returns a middleware that resolves the Authorization
// bearer token to an owner id and stores it in the request context.
//
// A missing or unknown token is not an error: the owner id is simply left
// empty, and downstream trip operations degrade to silent no-ops ("nothing
// to do when logged out"). The auth endpoints themselves decide what a
// missing session means.
func NewSessionAuth(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := BearerToken(r); token != "" {
				if session, err := sessions.SessionByToken(r.Context(), token); err == nil {
					ctx := context.WithValue(r.Context(), ownerIDKey{}, session.UserID)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// OwnerID returns the authenticated owner id from the request context, or
// an empty string when no valid session accompanied the request.
func OwnerID(ctx context.Context) string {
	id, _ := ctx.Value(ownerIDKey{}).(string)
	return id
}

// BearerToken extracts the token from an "Authorization: Bearer ..." header,
// or returns an empty string.
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}
