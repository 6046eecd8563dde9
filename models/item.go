package models

// Item is a tracked inventory record. It references its type, the user who
// registered it and the environment it currently sits in; movements update
// the latter.
type Item struct {
	// ID is the identity assigned by the persistence layer.
	ID int64 `json:"id"`

	// TypeID is the stored reference to the item's type.
	TypeID int64 `json:"-"`

	// Type is populated by services for responses. Inbound create/update
	// payloads carry the reference as a bare id ({"tipo":1}).
	Type *ItemType `json:"tipo,omitempty"`

	// RegistrantID is the stored reference to the creating user. Always
	// taken from the request principal, never from the payload.
	RegistrantID int64 `json:"-"`

	// Registrant is populated by services for detail responses.
	Registrant *User `json:"cadastrante,omitempty"`

	// CurrentEnvironmentID is the stored reference to the environment the
	// item is currently located in.
	CurrentEnvironmentID int64 `json:"-"`

	// CurrentEnvironment is populated by services for responses. Inbound
	// create payloads carry the reference as a bare id ({"ambienteAtual":2}).
	CurrentEnvironment *Environment `json:"ambienteAtual,omitempty"`
}

// TableName returns the name of the database table associated with Item.
func (i *Item) TableName() string {
	return "item"
}

// TypeName returns the projection type identity of Item.
func (i *Item) TypeName() string {
	return "item"
}

// EntityID implements [Entity].
func (i *Item) EntityID() int64 { return i.ID }

// SetEntityID implements [Entity].
func (i *Item) SetEntityID(id int64) { i.ID = id }

// Field resolves a projection field by its wire name.
func (i *Item) Field(name string) (any, bool) {
	switch name {
	case "id":
		return i.ID, true
	case "tipo":
		return i.Type, true
	case "cadastrante":
		return i.Registrant, true
	case "ambienteAtual":
		return i.CurrentEnvironment, true
	default:
		return nil, false
	}
}
