package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"resume-insights/internal/shared/telemetry"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationsDir = "migrations"

func init() {
	goose.SetBaseFS(migrationFiles)
}

// RunMigrations brings the schema up to date. A nil database is a no-op so
// the in-memory dev setup can share the bootstrap path.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	return Migrate(ctx, database, "up")
}

// Migrate runs one goose command against the embedded migrations:
// up, down, redo, status or version.
func Migrate(ctx context.Context, database *sql.DB, command string) error {
	if database == nil {
		return nil
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, database, migrationsDir)
	case "down":
		err = goose.DownContext(ctx, database, migrationsDir)
	case "redo":
		err = goose.RedoContext(ctx, database, migrationsDir)
	case "status":
		err = goose.StatusContext(ctx, database, migrationsDir)
	case "version":
		err = goose.VersionContext(ctx, database, migrationsDir)
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	version, err := goose.GetDBVersionContext(ctx, database)
	if err != nil {
		return fmt.Errorf("goose version: %w", err)
	}
	telemetry.Info("db.migrated", map[string]any{"command": command, "version": version})
	return nil
}
