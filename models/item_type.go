package models

import "github.com/Mateus-A-Soares/Instoc/internal/projection"

// ItemType categorizes items ("tipo_item"). Types carry a set of attached
// descriptive tags and reference every item registered under them — a
// cyclic graph (item → tipo → itensAnexados → item) that only renders
// safely because projections bound the traversal per request.
type ItemType struct {
	// ID is the identity assigned by the persistence layer.
	ID int64 `json:"id"`

	// Name is the label of the type.
	Name string `json:"nome"`

	// RegistrantID is the stored reference to the creating user.
	RegistrantID int64 `json:"-"`

	// Registrant is populated by services for detail responses.
	Registrant *User `json:"cadastrante,omitempty"`

	// AttachedTags holds the descriptive tags owned by this type. They
	// are created and removed together with it.
	AttachedTags []*ItemTypeTag `json:"tagsAnexadas,omitempty"`

	// AttachedItems holds the items registered under this type.
	// Populated by services for detail responses.
	AttachedItems []*Item `json:"itensAnexados,omitempty"`
}

// TableName returns the name of the database table associated with
// ItemType.
func (t *ItemType) TableName() string {
	return "tipo_item"
}

// TypeName returns the projection type identity of ItemType.
func (t *ItemType) TypeName() string {
	return "tipoItem"
}

// EntityID implements [Entity].
func (t *ItemType) EntityID() int64 { return t.ID }

// SetEntityID implements [Entity].
func (t *ItemType) SetEntityID(id int64) { t.ID = id }

// Field resolves a projection field by its wire name.
func (t *ItemType) Field(name string) (any, bool) {
	switch name {
	case "id":
		return t.ID, true
	case "nome":
		return t.Name, true
	case "cadastrante":
		return t.Registrant, true
	case "tagsAnexadas":
		return projection.List(t.AttachedTags), true
	case "itensAnexados":
		return projection.List(t.AttachedItems), true
	default:
		return nil, false
	}
}
