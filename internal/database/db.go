// Package database provides database connection management.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/hsmedia/lessonpack/schemas"
)

func init() {
	// modernc.org/sqlite registers as "sqlite", which sqlx has no bindvar
	// style for.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open opens the SQLite database at path, creating the file and its
// directory when absent, and applies the schema migrations.
func Open(path string) (*sqlx.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if err := schemas.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("schemas.Migrate() > %w", err)
	}

	return db, nil
}
