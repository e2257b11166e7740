package database

import (
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrateUp applies all pending migrations from the embedded set. Safe to run
// on every startup; applied versions are skipped.
func MigrateUp(connString string) error {
	db, err := goose.OpenDBWithDriver("pgx", connString)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToOpenMigrationDB, err)
	}
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}

	slog.Default().Info(LogMsgMigrationsApplied)
	return nil
}
