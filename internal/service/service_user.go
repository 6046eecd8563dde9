package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/store"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// userService is the concrete implementation of [UserService].
type userService struct {
	users  *store.UserRepository
	logger *logger.Logger
}

// NewUserService constructs a [UserService] backed by the given repository.
func NewUserService(users *store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		users:  users,
		logger: logger,
	}
}

// List returns every registered user, active or not.
func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.users.FindAll(ctx)
}

// Get returns the user with the given id, or [ErrUserNotFound].
func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create registers a new active user with a bcrypt-hashed password.
//
// Error handling:
//   - missing or malformed fields → *[ValidationError] keyed by wire name
//   - duplicate email → *[ValidationError] on the "email" field
func (s *userService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	log := logger.FromContext(ctx)

	validation := NewValidationError()
	if user.Name == "" {
		validation.Add("nome", "não pode ser vazio")
	}
	if user.Email == "" {
		validation.Add("email", "não pode ser vazio")
	}
	if user.Password == "" {
		validation.Add("senha", "não pode ser vazia")
	}
	if !user.Permission.Valid() {
		validation.Add("permissao", "valor desconhecido")
	}
	if validation.HasErrors() {
		return nil, validation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return nil, err
	}

	user.Password = ""
	user.PasswordHash = string(hash)
	user.Active = true

	saved, err := s.users.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return nil, NewValidationError().Add("email", "endereço já cadastrado")
		}
		log.Err(err).Msg("user creation ended with error")
		return nil, err
	}

	return saved, nil
}

// Update rewrites the mutable fields of an existing user. Zero-valued fields
// in changes keep their stored value; a non-empty password is re-hashed.
func (s *userService) Update(ctx context.Context, id int64, changes *models.User) (*models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.Name != "" {
		user.Name = changes.Name
	}
	if changes.Email != "" {
		user.Email = changes.Email
	}
	if !changes.BirthDate.IsZero() {
		user.BirthDate = changes.BirthDate
	}
	if changes.Permission != "" {
		if !changes.Permission.Valid() {
			return nil, NewValidationError().Add("permissao", "valor desconhecido")
		}
		user.Permission = changes.Permission
	}
	if changes.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(changes.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Err(err).Msg("password hashing ended with error")
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err = s.users.Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return nil, NewValidationError().Add("email", "endereço já cadastrado")
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Err(err).Msg("user update ended with error")
		return nil, err
	}

	return user, nil
}

// Deactivate flips the user's active flag off. The row is kept: entities and
// movements registered by the user keep resolving their references.
func (s *userService) Deactivate(ctx context.Context, id int64) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if !user.Active {
		return nil
	}

	user.Active = false
	if err = s.users.Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}
