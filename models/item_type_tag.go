package models

// ItemTypeTag is a descriptive attribute attached to an item type
// ("tipo_item_tag"), e.g. header "voltagem", body "220V", kind "texto".
type ItemTypeTag struct {
	// ID is the identity assigned by the persistence layer.
	ID int64 `json:"id"`

	// Header is the attribute label.
	Header string `json:"cabecalho"`

	// Body is the attribute value. Optional.
	Body string `json:"corpo,omitempty"`

	// Kind describes how the attribute value should be interpreted.
	Kind string `json:"tipo"`

	// ItemTypeID is the stored reference to the owning item type.
	ItemTypeID int64 `json:"-"`
}

// TableName returns the name of the database table associated with
// ItemTypeTag.
func (t *ItemTypeTag) TableName() string {
	return "tipo_item_tag"
}

// TypeName returns the projection type identity of ItemTypeTag.
func (t *ItemTypeTag) TypeName() string {
	return "tipoItemTag"
}

// EntityID implements [Entity].
func (t *ItemTypeTag) EntityID() int64 { return t.ID }

// SetEntityID implements [Entity].
func (t *ItemTypeTag) SetEntityID(id int64) { t.ID = id }

// Field resolves a projection field by its wire name.
func (t *ItemTypeTag) Field(name string) (any, bool) {
	switch name {
	case "id":
		return t.ID, true
	case "cabecalho":
		return t.Header, true
	case "corpo":
		return t.Body, true
	case "tipo":
		return t.Kind, true
	default:
		return nil, false
	}
}
