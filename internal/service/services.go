package service

import (
	"github.com/Mateus-A-Soares/Instoc/internal/config"
	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/store"
)

// Services aggregates one service per API concern. It is the single value
// the transport layer receives from the business layer.
type Services struct {
	AuthService        AuthService
	UserService        UserService
	EnvironmentService EnvironmentService
	ItemService        ItemService
	ItemTypeService    ItemTypeService
	MovementService    MovementService
}

// NewServices constructs every service against the given repositories.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(repositories.Users, cfg.App, logger),
		UserService:        NewUserService(repositories.Users, logger),
		EnvironmentService: NewEnvironmentService(repositories, logger),
		ItemService:        NewItemService(repositories, logger),
		ItemTypeService:    NewItemTypeService(repositories, logger),
		MovementService:    NewMovementService(repositories, logger),
	}
}
