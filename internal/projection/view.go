package projection

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// View is a json.Marshaler that serializes a single entity through the field
// projection registered for its type name.
type View struct {
	registry *Registry
	entity   Projectable
}

// MarshalJSON implements json.Marshaler.
//
// When no projection is registered for the entity's type the result is an
// empty object: an endpoint that forgot to declare its fields exposes
// nothing rather than everything. Registered fields the entity cannot
// resolve, and values that cannot be encoded, are logged and omitted; the
// remaining fields still serialize.
func (v View) MarshalJSON() ([]byte, error) {
	if v.entity == nil || isNil(v.entity) {
		return []byte("null"), nil
	}

	fields, ok := v.registry.Get(v.entity.TypeName())
	if !ok {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, field := range fields {
		value, resolved := v.entity.Field(field)
		if !resolved {
			v.registry.log.Warn().
				Str("type", v.entity.TypeName()).
				Str("field", field).
				Msg("projected field not resolvable, omitting")
			continue
		}
		encoded, err := v.encodeValue(value)
		if err != nil {
			v.registry.log.Warn().
				Err(err).
				Str("type", v.entity.TypeName()).
				Str("field", field).
				Msg("projected field not encodable, omitting")
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		name, _ := json.Marshal(field)
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeValue serializes a single field value, recursing through the
// registry for nested entities and entity lists.
func (v View) encodeValue(value any) ([]byte, error) {
	switch typed := value.(type) {
	case Projectable:
		if isNil(typed) {
			return []byte("null"), nil
		}
		return json.Marshal(View{registry: v.registry, entity: typed})
	case []Projectable:
		return json.Marshal(ListView{registry: v.registry, entities: typed})
	default:
		return json.Marshal(value)
	}
}

// ListView is a json.Marshaler that serializes a slice of entities through
// the field projections registered for their type names.
type ListView struct {
	registry *Registry
	entities []Projectable
}

// MarshalJSON implements json.Marshaler. The result is always a JSON array;
// a nil slice serializes as [].
func (l ListView) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, entity := range l.entities {
		if i > 0 {
			buf.WriteByte(',')
		}
		encoded, err := json.Marshal(View{registry: l.registry, entity: entity})
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// isNil reports whether value is a typed nil hiding behind a non-nil
// interface, the classic pitfall when a nil *Entity is stored in an any.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
