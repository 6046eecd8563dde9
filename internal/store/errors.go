package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a query expected to match at least one
	// record produces an empty result set, or when an UPDATE or DELETE
	// affects zero rows.
	ErrNotFound = errors.New("record was not found")

	// ErrIdentityAlreadyAssigned is returned when an entity passed to Insert
	// already carries a nonzero id. Identity is assigned by the database;
	// inserting a pre-identified entity would silently shadow an existing
	// row.
	ErrIdentityAlreadyAssigned = errors.New("entity already carries a database identity")

	// ErrEmailAlreadyExists is returned when persisting a user fails because
	// another user already registered the same email address.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrRowReferenced is returned when an UPDATE or DELETE is rejected by a
	// foreign key constraint: another table still references the row.
	ErrRowReferenced = errors.New("row is referenced by another table")

	// ErrUnsupportedEngine is returned by [Open] when the configured database
	// engine is neither "postgres" nor "sqlite".
	ErrUnsupportedEngine = errors.New("unsupported database engine")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into an entity fails.
	ErrScanningRow = errors.New("failed to scan entity row")
)
