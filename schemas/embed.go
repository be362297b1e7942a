// Package schemas provides the embedded SQL schema for the run history
// database.
package schemas

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every migration file in name order. Statements use
// IF NOT EXISTS guards, so reapplying on an existing database is safe.
func Migrate(db *sqlx.DB) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob() > %w", err)
	}
	for _, name := range names {
		statements, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("migrations.ReadFile(%s) > %w", name, err)
		}
		if _, err := db.Exec(string(statements)); err != nil {
			return fmt.Errorf("db.Exec(%s) > %w", name, err)
		}
	}
	return nil
}
