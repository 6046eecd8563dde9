package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Mateus-A-Soares/Instoc/internal/config"
	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/store"
	"github.com/Mateus-A-Soares/Instoc/internal/utils"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// authService is the concrete implementation of [AuthService]. It verifies
// credentials against the user repository with bcrypt and issues HS512
// tokens carrying the user's identity claims.
type authService struct {
	// users is the data-access layer used to look up accounts by email.
	users *store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero means issued tokens never expire.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given user
// repository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users *store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:         users,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Authenticate checks the email/password pair and issues a signed token.
//
// Unknown emails, deactivated accounts and wrong passwords are all reported
// as [ErrWrongCredentials] so the response never reveals which part of the
// pair was wrong.
func (a *authService) Authenticate(ctx context.Context, email, password string) (*models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWrongCredentials
		}
		log.Err(err).Msg("user lookup ended with error")
		return nil, err
	}

	if !user.Active {
		return nil, ErrWrongCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(*user, a.tokenSignKey, a.tokenIssuer, a.tokenDuration)
	if err != nil {
		log.Err(err).Msg("token generation ended with error")
		return nil, err
	}

	return token, nil
}

// ParseToken verifies a compact token string and returns the decoded token.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (*models.Token, error) {
	return utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
}
