package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// RowScanner is the subset of *sql.Row / *sql.Rows needed to hydrate an
// entity from a result row.
type RowScanner interface {
	Scan(dest ...any) error
}

// Binding declares how an entity type maps onto its table. It is the only
// per-entity input the generic [Repository] needs: the table name, the
// column list (identity column first) and two closures translating between
// rows and entity values.
type Binding[T models.Entity] struct {
	// Table is the table the entity persists into.
	Table string

	// Columns lists every persisted column. The identity column "id" must
	// come first; Scan receives values in exactly this order.
	Columns []string

	// Scan hydrates one entity from a result row carrying all Columns.
	Scan func(row RowScanner) (T, error)

	// Values returns the entity's values for Columns[1:], in order. The
	// identity column is excluded because the database assigns it.
	Values func(entity T) []any
}

// Repository is a generic table gateway for one entity type. All queries are
// built with squirrel using the placeholder format of the underlying engine;
// no per-entity SQL exists anywhere else.
//
// Repository methods know nothing about relations or business rules: loading
// referenced entities and enforcing invariants is service-layer work.
type Repository[T models.Entity] struct {
	db      *DB
	binding Binding[T]
	logger  *logger.Logger
}

// NewRepository constructs a [Repository] for the entity type described by
// binding.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewRepository[T models.Entity](db *DB, log *logger.Logger, binding Binding[T]) *Repository[T] {
	log.Debug().Str("table", binding.Table).Msg("creating entity repository")
	return &Repository[T]{
		db:      db,
		binding: binding,
		logger:  log,
	}
}

// Find retrieves the first entity whose column equals value. When several
// rows match, the one with the lowest id wins; when none match,
// [ErrNotFound] is returned.
func (r *Repository[T]) Find(ctx context.Context, column string, value any) (T, error) {
	var zero T
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(r.binding.Columns...).
		From(r.binding.Table).
		Where(fmt.Sprintf("%s = ?", column), value).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("table", r.binding.Table).Msg("error building select query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entity, err := r.binding.Scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		log.Err(err).Str("table", r.binding.Table).Msg("error scanning entity row")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entity, nil
}

// FindByID retrieves the entity with the given identity, or [ErrNotFound].
func (r *Repository[T]) FindByID(ctx context.Context, id int64) (T, error) {
	return r.Find(ctx, "id", id)
}

// FindAll retrieves every persisted entity ordered by id.
func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	return r.findMany(ctx, r.db.Builder().
		Select(r.binding.Columns...).
		From(r.binding.Table).
		OrderBy("id"))
}

// FindAllBy retrieves every entity whose column equals value, ordered by id.
func (r *Repository[T]) FindAllBy(ctx context.Context, column string, value any) ([]T, error) {
	return r.findMany(ctx, r.db.Builder().
		Select(r.binding.Columns...).
		From(r.binding.Table).
		Where(fmt.Sprintf("%s = ?", column), value).
		OrderBy("id"))
}

// Insert persists a new entity and assigns the database-generated identity
// back onto it.
//
// An entity that already carries a nonzero id is rejected with
// [ErrIdentityAlreadyAssigned]: identity is owned by the database, and an
// insert must never masquerade as an update.
func (r *Repository[T]) Insert(ctx context.Context, entity T) (T, error) {
	var zero T
	log := logger.FromContext(ctx)

	if entity.EntityID() != 0 {
		return zero, ErrIdentityAlreadyAssigned
	}

	query, args, err := r.db.Builder().
		Insert(r.binding.Table).
		Columns(r.binding.Columns[1:]...).
		Values(r.binding.Values(entity)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("table", r.binding.Table).Msg("error building insert query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("table", r.binding.Table).Msg("error inserting entity")
		return zero, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	entity.SetEntityID(id)
	return entity, nil
}

// Update rewrites every non-identity column of the entity's row. A missing
// row yields [ErrNotFound].
func (r *Repository[T]) Update(ctx context.Context, entity T) error {
	log := logger.FromContext(ctx)

	update := r.db.Builder().Update(r.binding.Table)
	values := r.binding.Values(entity)
	for i, column := range r.binding.Columns[1:] {
		update = update.Set(column, values[i])
	}

	query, args, err := update.Where(sq.Eq{"id": entity.EntityID()}).ToSql()
	if err != nil {
		log.Err(err).Str("table", r.binding.Table).Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, query, args)
}

// Delete removes the row with the given identity. A missing row yields
// [ErrNotFound].
func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(r.binding.Table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("table", r.binding.Table).Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, query, args)
}

// DeleteEntity removes the row backing the given entity. It exists as a
// convenience over [Repository.Delete] for callers that already hold the
// loaded entity.
func (r *Repository[T]) DeleteEntity(ctx context.Context, entity T) error {
	return r.Delete(ctx, entity.EntityID())
}

func (r *Repository[T]) findMany(ctx context.Context, builder sq.SelectBuilder) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("table", r.binding.Table).Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("table", r.binding.Table).Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]T, 0)
	for rows.Next() {
		entity, err := r.binding.Scan(rows)
		if err != nil {
			log.Err(err).Str("table", r.binding.Table).Msg("error scanning entity rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entities = append(entities, entity)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("table", r.binding.Table).Msg("error iterating entity rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entities, nil
}

func (r *Repository[T]) execExpectingRow(ctx context.Context, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %w", ErrRowReferenced, err)
		}
		log.Err(err).Str("table", r.binding.Table).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
