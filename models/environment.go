package models

import "github.com/Mateus-A-Soares/Instoc/internal/projection"

// Environment is a physical location items are registered to ("ambiente").
// Items reference their current environment; the environment does not own
// them, which is why deleting an environment is guarded at the service
// layer rather than cascading.
type Environment struct {
	// ID is the identity assigned by the persistence layer.
	ID int64 `json:"id"`

	// Description is the human-readable label of the location.
	Description string `json:"descricao"`

	// RegistrantID is the stored reference to the creating user.
	RegistrantID int64 `json:"-"`

	// Registrant is populated by services when the projection asks for
	// the "cadastrante" field.
	Registrant *User `json:"cadastrante,omitempty"`

	// Items holds the items currently located in this environment.
	// Populated by services for list/detail responses.
	Items []*Item `json:"itens,omitempty"`
}

// TableName returns the name of the database table associated with
// Environment.
func (e *Environment) TableName() string {
	return "ambiente"
}

// TypeName returns the projection type identity of Environment.
func (e *Environment) TypeName() string {
	return "ambiente"
}

// EntityID implements [Entity].
func (e *Environment) EntityID() int64 { return e.ID }

// SetEntityID implements [Entity].
func (e *Environment) SetEntityID(id int64) { e.ID = id }

// Field resolves a projection field by its wire name.
func (e *Environment) Field(name string) (any, bool) {
	switch name {
	case "id":
		return e.ID, true
	case "descricao":
		return e.Description, true
	case "cadastrante":
		return e.Registrant, true
	case "itens":
		return projection.List(e.Items), true
	default:
		return nil, false
	}
}
