// Package projection implements per-request field projection for API
// responses.
//
// Entities expose their serializable fields through the [Projectable]
// capability interface. Each HTTP handler builds a [Registry] describing
// exactly which fields of which entity types the response may contain, then
// wraps the result value in a [View] (or [ListView]) whose MarshalJSON walks
// the registered field lists.
//
// The registry is deliberately scoped to a single request: two endpoints can
// serialize the same entity type with different field sets without
// interfering with each other, and reference cycles between entities are
// broken by simply not registering the back-reference field.
package projection

// Projectable is the capability an entity must implement to participate in
// projected serialization.
//
// TypeName returns the stable identity under which field lists are
// registered. Field resolves a single field by its wire name and reports
// whether the name is known; unknown names are skipped by the serializer
// rather than failing the whole response.
type Projectable interface {
	TypeName() string
	Field(name string) (any, bool)
}

// List converts a typed slice of projectable entities into a []Projectable
// suitable for returning from a Field method. A nil input yields a nil
// output so callers can distinguish "absent" from "empty".
func List[T Projectable](entities []T) []Projectable {
	if entities == nil {
		return nil
	}
	projectables := make([]Projectable, len(entities))
	for i, entity := range entities {
		projectables[i] = entity
	}
	return projectables
}
