package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed relay/*.sql agent/*.sql
var embedMigrations embed.FS

// Migrate applies the relay's PostgreSQL schema.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "relay"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// MigrateAgent applies the device agent's SQLite schema.
func MigrateAgent(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "agent"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
