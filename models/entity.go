package models

// Entity is implemented by every persisted domain record. It exposes the
// numeric identity assigned by the store and the storage name the generic
// repository binds its queries to.
//
// Identity is never client-supplied on create: repositories reject inserts
// whose identity is already set and assign it from the database instead.
type Entity interface {
	// EntityID returns the record's identity, or zero if it has not been
	// persisted yet.
	EntityID() int64

	// SetEntityID stores the identity assigned by the persistence layer.
	SetEntityID(id int64)

	// TableName returns the storage name of the entity. It is the only
	// per-type input the generic repository needs to build its queries.
	TableName() string
}
