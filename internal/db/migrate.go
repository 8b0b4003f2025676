package db

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// setupGoose points goose at the embedded SQLite migrations
func setupGoose() error {
	err := goose.SetDialect("sqlite3")
	if err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	migrationsDir, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to get migrations directory: %w", err)
	}

	goose.SetBaseFS(migrationsDir)
	goose.SetLogger(goose.NopLogger())
	return nil
}

func RunMigrations(db *sql.DB) error {
	err := setupGoose()
	if err != nil {
		return err
	}

	err = goose.Up(db, ".")
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	slog.Info("migrations completed successfully", "schema_version", version)
	return nil
}

// SchemaVersions reports the store's applied schema version and the latest
// version embedded in the binary.
func SchemaVersions(db *sql.DB) (current, latest int64, err error) {
	err = setupGoose()
	if err != nil {
		return 0, 0, err
	}

	migrations, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to collect migrations: %w", err)
	}
	last, err := migrations.Last()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to find latest migration: %w", err)
	}

	current, err = goose.GetDBVersion(db)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return current, last.Version, nil
}
