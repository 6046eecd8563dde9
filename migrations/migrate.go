// Package migrations embeds the database schema and applies it with goose.
//
// PostgreSQL and SQLite need slightly different DDL (identity columns above
// all), so each engine carries its own migration directory. The two sets
// must stay in lockstep: every migration number present for one engine must
// exist for the other.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// dialects maps an engine name to the goose dialect and the embedded
// directory holding its migrations.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	"postgres": {dialect: "pgx", dir: "postgres"},
	"sqlite":   {dialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations for the given engine ("postgres"
// or "sqlite") against db.
func Migrate(db *sql.DB, engine string) error {
	target, ok := dialects[engine]
	if !ok {
		return fmt.Errorf("no migrations for engine %q", engine)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(target.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
