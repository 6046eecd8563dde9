// Package adapter provides a typed client for the Instoc REST API.
//
// The primary abstraction is [ServerAdapter], which decouples callers (CLI
// tooling, integration jobs) from the wire protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/Mateus-A-Soares/Instoc/models"
)

// ServerAdapter defines transport-agnostic communication with an Instoc
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges credentials for a bearer token and stores it via
	// SetToken.
	Login(ctx context.Context, email, password string) error

	// ListEnvironments fetches every registered environment.
	ListEnvironments(ctx context.Context) ([]*models.Environment, error)

	// GetEnvironment fetches one environment with the items it holds.
	GetEnvironment(ctx context.Context, id int64) (*models.Environment, error)

	// CreateEnvironment registers a new environment.
	CreateEnvironment(ctx context.Context, description string) (*models.Environment, error)

	// DeleteEnvironment removes an empty environment. Returns [ErrConflict]
	// (wrapped) while the environment still holds items.
	DeleteEnvironment(ctx context.Context, id int64) error

	// ListItems fetches every tracked item.
	ListItems(ctx context.Context) ([]*models.Item, error)

	// CreateItem registers a new item under the given type and environment.
	CreateItem(ctx context.Context, typeID, environmentID int64) (*models.Item, error)

	// MoveItem relocates an item into another environment and returns the
	// recorded movement. Returns [ErrConflict] (wrapped) when the item
	// already occupies the target environment.
	MoveItem(ctx context.Context, itemID, nextEnvironmentID int64) (*models.Movement, error)

	// ListMovements fetches the full movement history.
	ListMovements(ctx context.Context) ([]*models.Movement, error)

	// ListItemTypes fetches every item type with its tags.
	ListItemTypes(ctx context.Context) ([]*models.ItemType, error)
}
