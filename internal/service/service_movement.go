package service

import (
	"context"
	"errors"
	"time"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/store"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// movementService is the concrete implementation of [MovementService].
// Movements are the only way an item changes environments; the service
// records the transition and rewrites the item's current environment in the
// same call.
type movementService struct {
	repositories *store.Repositories
	logger       *logger.Logger

	// now is swapped out in tests to pin movement timestamps.
	now func() time.Time
}

// NewMovementService constructs a [MovementService] backed by the given
// repositories.
func NewMovementService(repositories *store.Repositories, logger *logger.Logger) MovementService {
	return &movementService{
		repositories: repositories,
		logger:       logger,
		now:          time.Now,
	}
}

// List returns the full movement history, hydrated with items, environments
// and movers.
func (s *movementService) List(ctx context.Context) ([]*models.Movement, error) {
	movements, err := s.repositories.Movements.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, movement := range movements {
		if err = s.hydrate(ctx, movement); err != nil {
			return nil, err
		}
	}

	return movements, nil
}

// Move relocates itemID into nextEnvironmentID on behalf of moverID.
//
// The movement records the environment the item leaves and the one it
// enters, stamped with the server-side time; the item's current environment
// is rewritten afterwards.
//
// Error handling:
//   - unknown item → [ErrItemNotFound]
//   - unknown target environment → [ErrEnvironmentNotFound]
//   - target equals the item's current environment → [ErrSameEnvironment]
func (s *movementService) Move(ctx context.Context, itemID, nextEnvironmentID, moverID int64) (*models.Movement, error) {
	log := logger.FromContext(ctx)

	item, err := s.repositories.Items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if _, err = s.repositories.Environments.FindByID(ctx, nextEnvironmentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEnvironmentNotFound
		}
		return nil, err
	}

	if item.CurrentEnvironmentID == nextEnvironmentID {
		return nil, ErrSameEnvironment
	}

	movement, err := s.repositories.Movements.Insert(ctx, &models.Movement{
		MovedAt:               s.now(),
		ItemID:                item.ID,
		PreviousEnvironmentID: item.CurrentEnvironmentID,
		NextEnvironmentID:     nextEnvironmentID,
		MoverID:               moverID,
	})
	if err != nil {
		return nil, err
	}

	item.CurrentEnvironmentID = nextEnvironmentID
	if err = s.repositories.Items.Update(ctx, item); err != nil {
		log.Err(err).Int64("item", item.ID).Msg("item relocation ended with error after recording movement")
		return nil, err
	}

	if err = s.hydrate(ctx, movement); err != nil {
		return nil, err
	}

	return movement, nil
}

// hydrate loads the movement's item, both environments and the mover.
func (s *movementService) hydrate(ctx context.Context, movement *models.Movement) error {
	item, err := s.repositories.Items.FindByID(ctx, movement.ItemID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	movement.Item = item

	previous, err := s.repositories.Environments.FindByID(ctx, movement.PreviousEnvironmentID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	movement.PreviousEnvironment = previous

	next, err := s.repositories.Environments.FindByID(ctx, movement.NextEnvironmentID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	movement.NextEnvironment = next

	mover, err := s.repositories.Users.FindByID(ctx, movement.MoverID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	movement.Mover = mover

	return nil
}
