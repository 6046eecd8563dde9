package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every issued token. The custom
// claim keys ("id", "nome", "email", "permissao") are part of the wire
// contract and must not be renamed: tokens issued before a redeploy keep
// verifying against them.
type TokenClaims struct {
	// RegisteredClaims provides the standard issuance metadata
	// (iss, iat, sub, exp) as defined by RFC 7519.
	jwt.RegisteredClaims

	// UserID is the identity of the authenticated user.
	UserID int64 `json:"id"`

	// Name is the user's display name.
	Name string `json:"nome"`

	// Email is the user's contact address.
	Email string `json:"email"`

	// Permission is the wire form of the user's access level.
	Permission string `json:"permissao"`
}

// Token wraps a signed JWT together with its decoded claim set.
//
// It embeds [jwt.Token] for low-level operations and [TokenClaims] for
// claim access; SignedString holds the compact serialized form
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string
	// form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims is the decoded claim set of the token.
	TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Principal rebuilds the authenticated user value from the token's claim
// set. No database lookup is involved: the principal is only as fresh as
// the token's issuance time.
func (t *Token) Principal() User {
	return User{
		ID:         t.UserID,
		Name:       t.TokenClaims.Name,
		Email:      t.TokenClaims.Email,
		Permission: Permission(t.TokenClaims.Permission),
		Active:     true,
	}
}

// String returns the compact JWS serialization of the token. It implements
// the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
