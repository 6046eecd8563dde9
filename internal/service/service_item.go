package service

import (
	"context"
	"errors"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/store"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// itemService is the concrete implementation of [ItemService]. Read
// operations hydrate the type, current environment and registrant
// references.
type itemService struct {
	repositories *store.Repositories
	logger       *logger.Logger
}

// NewItemService constructs an [ItemService] backed by the given
// repositories.
func NewItemService(repositories *store.Repositories, logger *logger.Logger) ItemService {
	return &itemService{
		repositories: repositories,
		logger:       logger,
	}
}

// List returns every item with its references hydrated.
func (s *itemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repositories.Items.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = s.hydrate(ctx, item); err != nil {
			return nil, err
		}
	}

	return items, nil
}

// Get returns the item with the given id, or [ErrItemNotFound].
func (s *itemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repositories.Items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if err = s.hydrate(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Create registers a new item of the given type inside the given
// environment on behalf of registrantID. Broken references are rejected
// field by field so the caller sees every problem at once.
func (s *itemService) Create(ctx context.Context, typeID, environmentID, registrantID int64) (*models.Item, error) {
	validation := NewValidationError()

	if _, err := s.repositories.ItemTypes.FindByID(ctx, typeID); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		validation.Add("tipo", "tipo de item não encontrado")
	}
	if _, err := s.repositories.Environments.FindByID(ctx, environmentID); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		validation.Add("ambienteAtual", "ambiente não encontrado")
	}
	if validation.HasErrors() {
		return nil, validation
	}

	item, err := s.repositories.Items.Insert(ctx, &models.Item{
		TypeID:               typeID,
		RegistrantID:         registrantID,
		CurrentEnvironmentID: environmentID,
	})
	if err != nil {
		return nil, err
	}

	if err = s.hydrate(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Update changes the item's type. The current environment is untouched:
// relocations are movements and carry history.
func (s *itemService) Update(ctx context.Context, id, typeID int64) (*models.Item, error) {
	item, err := s.repositories.Items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if _, err = s.repositories.ItemTypes.FindByID(ctx, typeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewValidationError().Add("tipo", "tipo de item não encontrado")
		}
		return nil, err
	}

	item.TypeID = typeID
	if err = s.repositories.Items.Update(ctx, item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if err = s.hydrate(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Delete removes an item.
//
// Error handling:
//   - unknown id → [ErrItemNotFound]
//   - item appears in movement history → [ErrItemHasMovements]
func (s *itemService) Delete(ctx context.Context, id int64) error {
	if err := s.repositories.Items.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrItemNotFound
		}
		if errors.Is(err, store.ErrRowReferenced) {
			return ErrItemHasMovements
		}
		return err
	}
	return nil
}

// hydrate loads the item's type, current environment and registrant.
func (s *itemService) hydrate(ctx context.Context, item *models.Item) error {
	itemType, err := s.repositories.ItemTypes.FindByID(ctx, item.TypeID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	item.Type = itemType

	environment, err := s.repositories.Environments.FindByID(ctx, item.CurrentEnvironmentID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	item.CurrentEnvironment = environment

	registrant, err := s.repositories.Users.FindByID(ctx, item.RegistrantID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	item.Registrant = registrant

	return nil
}
