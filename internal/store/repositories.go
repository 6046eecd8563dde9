package store

import (
	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// Repositories aggregates one repository per persisted entity type. It is
// the single value the service layer receives from the persistence layer.
type Repositories struct {
	Users        *UserRepository
	Environments *Repository[*models.Environment]
	Items        *Repository[*models.Item]
	ItemTypes    *Repository[*models.ItemType]
	ItemTypeTags *Repository[*models.ItemTypeTag]
	Movements    *Repository[*models.Movement]
}

// NewRepositories constructs every repository against the given connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db, log),
		Environments: NewRepository(db, log, EnvironmentBinding()),
		Items:        NewRepository(db, log, ItemBinding()),
		ItemTypes:    NewRepository(db, log, ItemTypeBinding()),
		ItemTypeTags: NewRepository(db, log, ItemTypeTagBinding()),
		Movements:    NewRepository(db, log, MovementBinding()),
	}
}
