// Package migrations embeds the SQL schema migrations and applies them with goose.
package migrations

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"

	"clinicdesk/internal/errors"
)

//go:embed *.sql
var embedMigrations embed.FS

// Up applies all pending migrations against the given database handle.
func Up(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	if err := goose.Up(db, "."); err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}
