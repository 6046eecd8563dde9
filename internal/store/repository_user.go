package store

import (
	"context"
	"strings"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// UserRepository extends the generic [Repository] with user-specific
// behaviour: email lookup and unique-email enforcement on writes.
type UserRepository struct {
	*Repository[*models.User]
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, log *logger.Logger) *UserRepository {
	log.Debug().Msg("creating user repository")
	return &UserRepository{
		Repository: NewRepository(db, log, UserBinding()),
	}
}

// FindByEmail retrieves the user registered under the given email address.
// The match is case-insensitive, mirroring how login treats addresses.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.Find(ctx, "LOWER(email)", strings.ToLower(email))
}

// Insert persists a new user.
//
// Error handling:
//   - unique constraint violation on email → [ErrEmailAlreadyExists]
//   - everything else → delegated to the generic repository
func (r *UserRepository) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	saved, err := r.Repository.Insert(ctx, user)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return saved, nil
}

// Update rewrites a user's row.
//
// Error handling mirrors [UserRepository.Insert]: a unique constraint
// violation on email is reported as [ErrEmailAlreadyExists].
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.Repository.Update(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}
