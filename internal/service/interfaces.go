package service

import (
	"context"

	"github.com/Mateus-A-Soares/Instoc/models"
)

// AuthService verifies credentials and manages the JWT token lifecycle.
type AuthService interface {
	// Authenticate checks the email/password pair against the user base and
	// issues a signed token on success. Unknown emails, wrong passwords and
	// deactivated accounts all collapse into [ErrWrongCredentials].
	Authenticate(ctx context.Context, email, password string) (*models.Token, error)

	// ParseToken verifies a compact token string and returns the decoded
	// token.
	ParseToken(ctx context.Context, tokenString string) (*models.Token, error)
}

// UserService manages user accounts. All operations are restricted to
// administrators at the transport layer.
type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id int64, changes *models.User) (*models.User, error)

	// Deactivate flips the user's active flag off instead of deleting the
	// row; references from registered entities and past movements must keep
	// resolving.
	Deactivate(ctx context.Context, id int64) error
}

// EnvironmentService manages physical environments and the items they hold.
type EnvironmentService interface {
	List(ctx context.Context) ([]*models.Environment, error)
	Get(ctx context.Context, id int64) (*models.Environment, error)
	Create(ctx context.Context, environment *models.Environment, registrantID int64) (*models.Environment, error)
	Update(ctx context.Context, id int64, description string) (*models.Environment, error)

	// Delete removes an environment. An environment still holding items is
	// protected by [ErrEnvironmentNotEmpty].
	Delete(ctx context.Context, id int64) error
}

// ItemService manages tracked items. Changing an item's environment is not
// part of this service: that is a movement, handled by [MovementService].
type ItemService interface {
	List(ctx context.Context) ([]*models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	Create(ctx context.Context, typeID, environmentID, registrantID int64) (*models.Item, error)
	Update(ctx context.Context, id, typeID int64) (*models.Item, error)
	Delete(ctx context.Context, id int64) error
}

// ItemTypeService manages item types and their descriptive tags.
type ItemTypeService interface {
	List(ctx context.Context) ([]*models.ItemType, error)
	Get(ctx context.Context, id int64) (*models.ItemType, error)
	Create(ctx context.Context, itemType *models.ItemType, registrantID int64) (*models.ItemType, error)
	Update(ctx context.Context, id int64, name string) (*models.ItemType, error)

	// Delete removes an item type. A type still referenced by items is
	// protected by [ErrItemTypeInUse].
	Delete(ctx context.Context, id int64) error

	AddTag(ctx context.Context, typeID int64, tag *models.ItemTypeTag) (*models.ItemTypeTag, error)
	DeleteTag(ctx context.Context, tagID int64) error
}

// MovementService records items changing environments.
type MovementService interface {
	List(ctx context.Context) ([]*models.Movement, error)

	// Move relocates the item into the given environment, recording a
	// movement with the acting user as mover. Moving an item into the
	// environment it already occupies fails with [ErrSameEnvironment].
	Move(ctx context.Context, itemID, nextEnvironmentID, moverID int64) (*models.Movement, error)
}
