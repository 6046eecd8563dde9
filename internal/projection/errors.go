package projection

import "errors"

// ErrUnresolvableField indicates that a registered field name is not
// recognized by the entity it was registered for. Returned by
// [Registry.Validate]; at serialization time the same condition is handled
// fail-soft (logged and omitted) instead.
var ErrUnresolvableField = errors.New("registered field cannot be resolved by entity")

// ErrTypeNotRegistered indicates that no field list has been registered for
// the entity's type name. Returned by [Registry.Validate]; at serialization
// time the same condition yields an empty object instead.
var ErrTypeNotRegistered = errors.New("no field projection registered for type")
