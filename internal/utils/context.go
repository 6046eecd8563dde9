// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, HTTP response writing,
// and JWT token generation and verification.
package utils

import (
	"context"

	"github.com/Mateus-A-Soares/Instoc/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authentication middleware
// stores the request principal. The value is a [models.User] rebuilt from
// verified token claims; it lives exactly as long as the request.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal models.User) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, principal)
}

// PrincipalFromContext retrieves the authenticated principal from the
// context.
//
// Returns the principal and an ok flag:
//   - ok == true  — a principal was attached by the authentication filter
//   - ok == false — the request is anonymous (missing or invalid token)
func PrincipalFromContext(ctx context.Context) (models.User, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.User)
	return principal, ok
}
