package service

import (
	"context"
	"errors"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/store"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// itemTypeService is the concrete implementation of [ItemTypeService].
type itemTypeService struct {
	repositories *store.Repositories
	logger       *logger.Logger
}

// NewItemTypeService constructs an [ItemTypeService] backed by the given
// repositories.
func NewItemTypeService(repositories *store.Repositories, logger *logger.Logger) ItemTypeService {
	return &itemTypeService{
		repositories: repositories,
		logger:       logger,
	}
}

// List returns every item type with its tags hydrated.
func (s *itemTypeService) List(ctx context.Context) ([]*models.ItemType, error) {
	itemTypes, err := s.repositories.ItemTypes.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, itemType := range itemTypes {
		if err = s.hydrate(ctx, itemType, false); err != nil {
			return nil, err
		}
	}

	return itemTypes, nil
}

// Get returns the item type with the given id, hydrated with its tags and
// the items registered under it.
func (s *itemTypeService) Get(ctx context.Context, id int64) (*models.ItemType, error) {
	itemType, err := s.repositories.ItemTypes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrItemTypeNotFound
		}
		return nil, err
	}

	if err = s.hydrate(ctx, itemType, true); err != nil {
		return nil, err
	}

	return itemType, nil
}

// Create registers a new item type on behalf of registrantID. Tags carried
// on the input are persisted along with it.
func (s *itemTypeService) Create(ctx context.Context, itemType *models.ItemType, registrantID int64) (*models.ItemType, error) {
	if itemType.Name == "" {
		return nil, NewValidationError().Add("nome", "não pode ser vazio")
	}

	tags := itemType.AttachedTags
	itemType.AttachedTags = nil
	itemType.RegistrantID = registrantID

	saved, err := s.repositories.ItemTypes.Insert(ctx, itemType)
	if err != nil {
		return nil, err
	}

	for _, tag := range tags {
		tag.ItemTypeID = saved.ID
		if _, err = s.AddTag(ctx, saved.ID, tag); err != nil {
			return nil, err
		}
	}

	if err = s.hydrate(ctx, saved, false); err != nil {
		return nil, err
	}

	return saved, nil
}

// Update renames an item type.
func (s *itemTypeService) Update(ctx context.Context, id int64, name string) (*models.ItemType, error) {
	if name == "" {
		return nil, NewValidationError().Add("nome", "não pode ser vazio")
	}

	itemType, err := s.repositories.ItemTypes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrItemTypeNotFound
		}
		return nil, err
	}

	itemType.Name = name
	if err = s.repositories.ItemTypes.Update(ctx, itemType); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrItemTypeNotFound
		}
		return nil, err
	}

	if err = s.hydrate(ctx, itemType, false); err != nil {
		return nil, err
	}

	return itemType, nil
}

// Delete removes an item type that no item references. Its tags go with it.
//
// Error handling:
//   - unknown id → [ErrItemTypeNotFound]
//   - items still registered under the type → [ErrItemTypeInUse]
func (s *itemTypeService) Delete(ctx context.Context, id int64) error {
	itemType, err := s.repositories.ItemTypes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrItemTypeNotFound
		}
		return err
	}

	items, err := s.repositories.Items.FindAllBy(ctx, "tipo_item_id", id)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return ErrItemTypeInUse
	}

	if err = s.repositories.ItemTypes.DeleteEntity(ctx, itemType); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrItemTypeNotFound
		}
		if errors.Is(err, store.ErrRowReferenced) {
			return ErrItemTypeInUse
		}
		return err
	}

	return nil
}

// AddTag attaches a descriptive tag to an existing item type.
func (s *itemTypeService) AddTag(ctx context.Context, typeID int64, tag *models.ItemTypeTag) (*models.ItemTypeTag, error) {
	validation := NewValidationError()
	if tag.Header == "" {
		validation.Add("cabecalho", "não pode ser vazio")
	}
	if tag.Kind == "" {
		validation.Add("tipo", "não pode ser vazio")
	}
	if validation.HasErrors() {
		return nil, validation
	}

	if _, err := s.repositories.ItemTypes.FindByID(ctx, typeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrItemTypeNotFound
		}
		return nil, err
	}

	tag.ItemTypeID = typeID
	return s.repositories.ItemTypeTags.Insert(ctx, tag)
}

// DeleteTag detaches a tag from its item type.
func (s *itemTypeService) DeleteTag(ctx context.Context, tagID int64) error {
	if err := s.repositories.ItemTypeTags.Delete(ctx, tagID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTagNotFound
		}
		return err
	}
	return nil
}

// hydrate loads the type's tags, registrant and, when withItems is set, the
// items registered under it.
func (s *itemTypeService) hydrate(ctx context.Context, itemType *models.ItemType, withItems bool) error {
	tags, err := s.repositories.ItemTypeTags.FindAllBy(ctx, "tipo_item_id", itemType.ID)
	if err != nil {
		return err
	}
	itemType.AttachedTags = tags

	registrant, err := s.repositories.Users.FindByID(ctx, itemType.RegistrantID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	itemType.Registrant = registrant

	if !withItems {
		return nil
	}

	items, err := s.repositories.Items.FindAllBy(ctx, "tipo_item_id", itemType.ID)
	if err != nil {
		return err
	}
	itemType.AttachedItems = items

	return nil
}
