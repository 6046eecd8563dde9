// Package store implements the persistence layer of the Instoc backend on
// top of database/sql, with PostgreSQL as the production engine and SQLite
// as a lightweight alternative for local development.
//
// Entity persistence goes through a single generic [Repository] parameterised
// by entity type; per-entity behaviour is supplied declaratively through a
// [Binding] so adding a new table costs one binding value, not a new
// repository implementation.
package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/Mateus-A-Soares/Instoc/internal/config"
	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/migrations"
)

// Database engine names accepted by [Open].
const (
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// DB wraps an open database connection together with the engine it speaks
// and the placeholder format its queries must use.
type DB struct {
	*sql.DB
	engine  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// Open establishes a database connection for the configured engine.
// The returned *DB is already pinged and ready for use.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*DB, error) {
	switch cfg.Engine {
	case EnginePostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case EngineSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("engine", cfg.Engine).Msg("unknown database engine")
		return nil, ErrUnsupportedEngine
	}
}

// NewDB wraps an already-open connection for the given engine. It exists
// for callers that manage the connection pool themselves, tests injecting a
// mock connection included; [Open] remains the production entry point.
func NewDB(conn *sql.DB, engine string, log *logger.Logger) (*DB, error) {
	var builder sq.StatementBuilderType
	switch engine {
	case EnginePostgres:
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	case EngineSQLite:
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	default:
		return nil, ErrUnsupportedEngine
	}

	return &DB{
		DB:      conn,
		engine:  engine,
		builder: builder,
		logger:  log,
	}, nil
}

// Migrate applies all pending schema migrations for the connection's engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.engine)
}

// Builder returns the squirrel statement builder preconfigured with the
// placeholder format of the connection's engine.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}
