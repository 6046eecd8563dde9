package projection

import (
	"fmt"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
)

// Registry maps entity type names to the ordered list of field names that
// may appear in a serialized response.
//
// A Registry is built once by the handler serving a request and then only
// read during serialization; it must not be mutated concurrently. Handlers
// construct a fresh Registry per endpoint so projections never leak between
// routes.
type Registry struct {
	log    *logger.Logger
	fields map[string][]string
}

// NewRegistry constructs an empty Registry. Fail-soft serialization events
// (unknown field names, unencodable values) are reported through log.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		log:    log,
		fields: make(map[string][]string),
	}
}

// Set registers the ordered field list for the given type name, replacing
// any previous registration. Serialized objects emit fields in exactly this
// order.
func (r *Registry) Set(typeName string, fields ...string) *Registry {
	r.fields[typeName] = fields
	return r
}

// Get returns the registered field list for typeName and whether one exists.
func (r *Registry) Get(typeName string) ([]string, bool) {
	fields, ok := r.fields[typeName]
	return fields, ok
}

// View wraps a single entity for projected serialization. The returned value
// implements json.Marshaler; passing it to an encoder produces an object
// containing only the registered fields of the entity.
func (r *Registry) View(entity Projectable) View {
	return View{registry: r, entity: entity}
}

// ViewList wraps a slice of entities for projected serialization as a JSON
// array. A nil slice serializes as an empty array, never null.
func (r *Registry) ViewList(entities []Projectable) ListView {
	return ListView{registry: r, entities: entities}
}

// Validate checks every registered field list against a sample entity of the
// matching type and reports registrations that would be silently dropped at
// serialization time. It exists so tests and startup checks can catch typos
// in field names; the serializer itself never fails on them.
func (r *Registry) Validate(samples ...Projectable) error {
	for _, sample := range samples {
		fields, ok := r.Get(sample.TypeName())
		if !ok {
			return fmt.Errorf("%w: %q", ErrTypeNotRegistered, sample.TypeName())
		}
		for _, field := range fields {
			if _, resolved := sample.Field(field); !resolved {
				return fmt.Errorf("%w: %q on type %q", ErrUnresolvableField, field, sample.TypeName())
			}
		}
	}
	return nil
}
