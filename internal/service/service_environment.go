package service

import (
	"context"
	"errors"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/store"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// environmentService is the concrete implementation of
// [EnvironmentService]. Read operations hydrate the registrant and the item
// list so callers can project any registered field without touching the
// store themselves.
type environmentService struct {
	repositories *store.Repositories
	logger       *logger.Logger
}

// NewEnvironmentService constructs an [EnvironmentService] backed by the
// given repositories.
func NewEnvironmentService(repositories *store.Repositories, logger *logger.Logger) EnvironmentService {
	return &environmentService{
		repositories: repositories,
		logger:       logger,
	}
}

// List returns every environment with its registrant hydrated.
func (s *environmentService) List(ctx context.Context) ([]*models.Environment, error) {
	environments, err := s.repositories.Environments.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, environment := range environments {
		if err = s.hydrate(ctx, environment, false); err != nil {
			return nil, err
		}
	}

	return environments, nil
}

// Get returns the environment with the given id, hydrated with its
// registrant and the items it currently holds.
func (s *environmentService) Get(ctx context.Context, id int64) (*models.Environment, error) {
	environment, err := s.repositories.Environments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEnvironmentNotFound
		}
		return nil, err
	}

	if err = s.hydrate(ctx, environment, true); err != nil {
		return nil, err
	}

	return environment, nil
}

// Create registers a new environment on behalf of registrantID.
func (s *environmentService) Create(ctx context.Context, environment *models.Environment, registrantID int64) (*models.Environment, error) {
	if environment.Description == "" {
		return nil, NewValidationError().Add("descricao", "não pode ser vazia")
	}

	environment.RegistrantID = registrantID
	saved, err := s.repositories.Environments.Insert(ctx, environment)
	if err != nil {
		return nil, err
	}

	if err = s.hydrate(ctx, saved, false); err != nil {
		return nil, err
	}

	return saved, nil
}

// Update rewrites the environment's description.
func (s *environmentService) Update(ctx context.Context, id int64, description string) (*models.Environment, error) {
	if description == "" {
		return nil, NewValidationError().Add("descricao", "não pode ser vazia")
	}

	environment, err := s.repositories.Environments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEnvironmentNotFound
		}
		return nil, err
	}

	environment.Description = description
	if err = s.repositories.Environments.Update(ctx, environment); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEnvironmentNotFound
		}
		return nil, err
	}

	if err = s.hydrate(ctx, environment, false); err != nil {
		return nil, err
	}

	return environment, nil
}

// Delete removes an environment that holds no items.
//
// Error handling:
//   - unknown id → [ErrEnvironmentNotFound]
//   - items still present → [ErrEnvironmentNotEmpty]
//   - environment appears in movement history → [ErrEnvironmentInHistory]
func (s *environmentService) Delete(ctx context.Context, id int64) error {
	environment, err := s.repositories.Environments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEnvironmentNotFound
		}
		return err
	}

	items, err := s.repositories.Items.FindAllBy(ctx, "ambiente_atual_id", id)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return ErrEnvironmentNotEmpty
	}

	if err = s.repositories.Environments.DeleteEntity(ctx, environment); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEnvironmentNotFound
		}
		if errors.Is(err, store.ErrRowReferenced) {
			return ErrEnvironmentInHistory
		}
		return err
	}

	return nil
}

// hydrate loads the registrant and, when withItems is set, the environment's
// items with their types.
func (s *environmentService) hydrate(ctx context.Context, environment *models.Environment, withItems bool) error {
	registrant, err := s.repositories.Users.FindByID(ctx, environment.RegistrantID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	environment.Registrant = registrant

	if !withItems {
		return nil
	}

	items, err := s.repositories.Items.FindAllBy(ctx, "ambiente_atual_id", environment.ID)
	if err != nil {
		return err
	}
	for _, item := range items {
		itemType, err := s.repositories.ItemTypes.FindByID(ctx, item.TypeID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		item.Type = itemType
	}
	environment.Items = items

	return nil
}
