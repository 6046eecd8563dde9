package http

import (
	"context"
	"errors"

	"github.com/Mateus-A-Soares/Instoc/internal/service"
	"github.com/Mateus-A-Soares/Instoc/internal/utils"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// Hand-written service fakes. Each fake delegates to an optional function
// field; tests set only the behaviour the route under test exercises.

var errFakeNotConfigured = errors.New("fake method not configured")

const (
	testSignKey = "test-sign-key"
	testIssuer  = "~Instock!~"
)

type fakeAuthService struct {
	authenticateFn func(ctx context.Context, email, password string) (*models.Token, error)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, email, password string) (*models.Token, error) {
	if f.authenticateFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.authenticateFn(ctx, email, password)
}

// ParseToken runs real verification against the test key, so middleware
// tests exercise genuine signature checks instead of a stub.
func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (*models.Token, error) {
	return utils.ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
}

type fakeUserService struct {
	listFn       func(ctx context.Context) ([]*models.User, error)
	getFn        func(ctx context.Context, id int64) (*models.User, error)
	createFn     func(ctx context.Context, user *models.User) (*models.User, error)
	updateFn     func(ctx context.Context, id int64, changes *models.User) (*models.User, error)
	deactivateFn func(ctx context.Context, id int64) error
}

func (f *fakeUserService) List(ctx context.Context) ([]*models.User, error) {
	if f.listFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.listFn(ctx)
}

func (f *fakeUserService) Get(ctx context.Context, id int64) (*models.User, error) {
	if f.getFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.getFn(ctx, id)
}

func (f *fakeUserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if f.createFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.createFn(ctx, user)
}

func (f *fakeUserService) Update(ctx context.Context, id int64, changes *models.User) (*models.User, error) {
	if f.updateFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.updateFn(ctx, id, changes)
}

func (f *fakeUserService) Deactivate(ctx context.Context, id int64) error {
	if f.deactivateFn == nil {
		return errFakeNotConfigured
	}
	return f.deactivateFn(ctx, id)
}

type fakeEnvironmentService struct {
	listFn   func(ctx context.Context) ([]*models.Environment, error)
	getFn    func(ctx context.Context, id int64) (*models.Environment, error)
	createFn func(ctx context.Context, environment *models.Environment, registrantID int64) (*models.Environment, error)
	updateFn func(ctx context.Context, id int64, description string) (*models.Environment, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeEnvironmentService) List(ctx context.Context) ([]*models.Environment, error) {
	if f.listFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.listFn(ctx)
}

func (f *fakeEnvironmentService) Get(ctx context.Context, id int64) (*models.Environment, error) {
	if f.getFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.getFn(ctx, id)
}

func (f *fakeEnvironmentService) Create(ctx context.Context, environment *models.Environment, registrantID int64) (*models.Environment, error) {
	if f.createFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.createFn(ctx, environment, registrantID)
}

func (f *fakeEnvironmentService) Update(ctx context.Context, id int64, description string) (*models.Environment, error) {
	if f.updateFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.updateFn(ctx, id, description)
}

func (f *fakeEnvironmentService) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		return errFakeNotConfigured
	}
	return f.deleteFn(ctx, id)
}

type fakeItemService struct {
	listFn   func(ctx context.Context) ([]*models.Item, error)
	getFn    func(ctx context.Context, id int64) (*models.Item, error)
	createFn func(ctx context.Context, typeID, environmentID, registrantID int64) (*models.Item, error)
	updateFn func(ctx context.Context, id, typeID int64) (*models.Item, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeItemService) List(ctx context.Context) ([]*models.Item, error) {
	if f.listFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.listFn(ctx)
}

func (f *fakeItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	if f.getFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.getFn(ctx, id)
}

func (f *fakeItemService) Create(ctx context.Context, typeID, environmentID, registrantID int64) (*models.Item, error) {
	if f.createFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.createFn(ctx, typeID, environmentID, registrantID)
}

func (f *fakeItemService) Update(ctx context.Context, id, typeID int64) (*models.Item, error) {
	if f.updateFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.updateFn(ctx, id, typeID)
}

func (f *fakeItemService) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		return errFakeNotConfigured
	}
	return f.deleteFn(ctx, id)
}

type fakeItemTypeService struct {
	listFn      func(ctx context.Context) ([]*models.ItemType, error)
	getFn       func(ctx context.Context, id int64) (*models.ItemType, error)
	createFn    func(ctx context.Context, itemType *models.ItemType, registrantID int64) (*models.ItemType, error)
	updateFn    func(ctx context.Context, id int64, name string) (*models.ItemType, error)
	deleteFn    func(ctx context.Context, id int64) error
	addTagFn    func(ctx context.Context, typeID int64, tag *models.ItemTypeTag) (*models.ItemTypeTag, error)
	deleteTagFn func(ctx context.Context, tagID int64) error
}

func (f *fakeItemTypeService) List(ctx context.Context) ([]*models.ItemType, error) {
	if f.listFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.listFn(ctx)
}

func (f *fakeItemTypeService) Get(ctx context.Context, id int64) (*models.ItemType, error) {
	if f.getFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.getFn(ctx, id)
}

func (f *fakeItemTypeService) Create(ctx context.Context, itemType *models.ItemType, registrantID int64) (*models.ItemType, error) {
	if f.createFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.createFn(ctx, itemType, registrantID)
}

func (f *fakeItemTypeService) Update(ctx context.Context, id int64, name string) (*models.ItemType, error) {
	if f.updateFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.updateFn(ctx, id, name)
}

func (f *fakeItemTypeService) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		return errFakeNotConfigured
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeItemTypeService) AddTag(ctx context.Context, typeID int64, tag *models.ItemTypeTag) (*models.ItemTypeTag, error) {
	if f.addTagFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.addTagFn(ctx, typeID, tag)
}

func (f *fakeItemTypeService) DeleteTag(ctx context.Context, tagID int64) error {
	if f.deleteTagFn == nil {
		return errFakeNotConfigured
	}
	return f.deleteTagFn(ctx, tagID)
}

type fakeMovementService struct {
	listFn func(ctx context.Context) ([]*models.Movement, error)
	moveFn func(ctx context.Context, itemID, nextEnvironmentID, moverID int64) (*models.Movement, error)
}

func (f *fakeMovementService) List(ctx context.Context) ([]*models.Movement, error) {
	if f.listFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.listFn(ctx)
}

func (f *fakeMovementService) Move(ctx context.Context, itemID, nextEnvironmentID, moverID int64) (*models.Movement, error) {
	if f.moveFn == nil {
		return nil, errFakeNotConfigured
	}
	return f.moveFn(ctx, itemID, nextEnvironmentID, moverID)
}

// newFakeServices bundles fresh fakes into a service.Services value ready to
// be wired into a Handler.
func newFakeServices() (*service.Services, *fakeAuthService, *fakeUserService, *fakeEnvironmentService, *fakeItemService, *fakeItemTypeService, *fakeMovementService) {
	auth := &fakeAuthService{}
	users := &fakeUserService{}
	environments := &fakeEnvironmentService{}
	items := &fakeItemService{}
	itemTypes := &fakeItemTypeService{}
	movements := &fakeMovementService{}

	return &service.Services{
		AuthService:        auth,
		UserService:        users,
		EnvironmentService: environments,
		ItemService:        items,
		ItemTypeService:    itemTypes,
		MovementService:    movements,
	}, auth, users, environments, items, itemTypes, movements
}
