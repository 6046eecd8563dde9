package models

import "time"

// Movement records an item changing environments ("movimentacao"). It is
// append-only: movements are created by the movement service and never
// updated afterwards.
type Movement struct {
	// ID is the identity assigned by the persistence layer.
	ID int64 `json:"id"`

	// MovedAt is the server-side timestamp of the movement.
	MovedAt time.Time `json:"dataMovimentacao"`

	// ItemID is the stored reference to the moved item.
	ItemID int64 `json:"-"`

	// Item is populated by services for responses.
	Item *Item `json:"itemMovimentado,omitempty"`

	// PreviousEnvironmentID is the environment the item left.
	PreviousEnvironmentID int64 `json:"-"`

	// PreviousEnvironment is populated by services for responses.
	PreviousEnvironment *Environment `json:"ambienteAnterior,omitempty"`

	// NextEnvironmentID is the environment the item entered.
	NextEnvironmentID int64 `json:"-"`

	// NextEnvironment is populated by services for responses.
	NextEnvironment *Environment `json:"ambientePosterior,omitempty"`

	// MoverID is the stored reference to the user who moved the item.
	// Always taken from the request principal.
	MoverID int64 `json:"-"`

	// Mover is populated by services for responses.
	Mover *User `json:"movimentador,omitempty"`
}

// TableName returns the name of the database table associated with
// Movement.
func (m *Movement) TableName() string {
	return "movimentacao"
}

// TypeName returns the projection type identity of Movement.
func (m *Movement) TypeName() string {
	return "movimentacao"
}

// EntityID implements [Entity].
func (m *Movement) EntityID() int64 { return m.ID }

// SetEntityID implements [Entity].
func (m *Movement) SetEntityID(id int64) { m.ID = id }

// Field resolves a projection field by its wire name.
func (m *Movement) Field(name string) (any, bool) {
	switch name {
	case "id":
		return m.ID, true
	case "dataMovimentacao":
		return m.MovedAt, true
	case "itemMovimentado":
		return m.Item, true
	case "ambienteAnterior":
		return m.PreviousEnvironment, true
	case "ambientePosterior":
		return m.NextEnvironment, true
	case "movimentador":
		return m.Mover, true
	default:
		return nil, false
	}
}
