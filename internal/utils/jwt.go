package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Mateus-A-Soares/Instoc/models"
)

// TokenSubject is the fixed "sub" claim stamped on every issued token.
const TokenSubject = "Authentic"

// signingMethod is the only accepted JWS algorithm. Tokens signed with any
// other algorithm (including "none") are rejected during parsing.
var signingMethod = jwt.SigningMethodHS512

// ErrInvalidToken indicates that a presented token failed signature or claim
// verification. The underlying cause is wrapped for logging but callers
// should branch on this sentinel only.
var ErrInvalidToken = errors.New("token is invalid")

// GenerateJWTToken issues a signed token for the given user.
//
// The claim set carries the user's id, name, email and permission plus the
// standard issuance metadata: issuer, subject [TokenSubject] and the
// issued-at timestamp. When duration is zero the token carries no expiry
// claim and never expires; otherwise "exp" is set to now+duration.
func GenerateJWTToken(user models.User, signKey, issuer string, duration time.Duration) (*models.Token, error) {
	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  TokenSubject,
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Permission: user.Permission.String(),
	}
	if duration != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(duration))
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	signedString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &models.Token{
		Token:        token,
		TokenClaims:  claims,
		SignedString: signedString,
	}, nil
}

// ValidateAndParseJWTToken verifies the compact serialization of a token and
// returns the decoded token on success.
//
// Verification enforces the signature under signKey, the signing algorithm
// and the expected issuer; expiry is checked only when the token carries an
// "exp" claim. Any failure is reported as [ErrInvalidToken] with the cause
// wrapped.
func ValidateAndParseJWTToken(signedString, signKey, issuer string) (*models.Token, error) {
	claims := models.TokenClaims{}
	token, err := jwt.ParseWithClaims(
		signedString,
		&claims,
		func(token *jwt.Token) (any, error) {
			return []byte(signKey), nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return &models.Token{
		Token:        token,
		TokenClaims:  claims,
		SignedString: signedString,
	}, nil
}
