package models

// User represents an account entity used for authentication and
// authorization. It doubles as the request principal: the authentication
// filter rebuilds a User value from verified token claims on every request,
// so no database lookup happens per request and sensitive fields must never
// leave the process.
type User struct {
	// ID is the identity assigned by the persistence layer.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"nome"`

	// Email is the unique contact address, also the login identifier.
	Email string `json:"email"`

	// BirthDate is serialized in the "dd/MM/yyyy" wire format.
	BirthDate Date `json:"dataNascimento"`

	// Permission is the access level (ADMINISTRADOR or FUNCIONARIO).
	Permission Permission `json:"permissao"`

	// Password carries the plaintext credential on inbound create/login
	// payloads only. It is never persisted or serialized back.
	Password string `json:"senha,omitempty"`

	// PasswordHash is the stored bcrypt hash. Never exposed via JSON.
	PasswordHash string `json:"-"`

	// Active marks whether the account may authenticate. Users are
	// deactivated instead of deleted.
	Active bool `json:"ativo"`
}

// TableName returns the name of the database table associated with User.
func (u *User) TableName() string {
	return "usuario"
}

// TypeName returns the projection type identity of User.
func (u *User) TypeName() string {
	return "usuario"
}

// EntityID implements [Entity].
func (u *User) EntityID() int64 { return u.ID }

// SetEntityID implements [Entity].
func (u *User) SetEntityID(id int64) { u.ID = id }

// Field resolves a projection field by its wire name. The password and its
// hash are deliberately unresolvable so no projection can ever expose them.
func (u *User) Field(name string) (any, bool) {
	switch name {
	case "id":
		return u.ID, true
	case "nome":
		return u.Name, true
	case "email":
		return u.Email, true
	case "dataNascimento":
		return u.BirthDate, true
	case "permissao":
		return u.Permission, true
	case "ativo":
		return u.Active, true
	default:
		return nil, false
	}
}
