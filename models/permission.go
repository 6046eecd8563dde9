package models

// Permission is the access level carried by a user account and embedded in
// the "permissao" claim of issued tokens. The wire values are kept exactly
// as stored, so tokens issued by earlier deployments remain verifiable.
type Permission string

const (
	// PermissionAdministrator grants access to user management and tag
	// deletion endpoints in addition to everything employees can do.
	PermissionAdministrator Permission = "ADMINISTRADOR"

	// PermissionEmployee grants access to the regular inventory endpoints.
	PermissionEmployee Permission = "FUNCIONARIO"
)

// Valid reports whether p is one of the known permission levels.
func (p Permission) Valid() bool {
	return p == PermissionAdministrator || p == PermissionEmployee
}

// String returns the wire representation of the permission level.
func (p Permission) String() string {
	return string(p)
}
