package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/bnema/dumber-addons/internal/logging"
)

//go:embed migrations/*.sql
var addonMigrations embed.FS

const migrationsDir = "migrations"

// useAddonMigrations points goose at the embedded addons schema.
func useAddonMigrations() error {
	goose.SetBaseFS(addonMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return nil
}

// RunMigrations brings the addons schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	if err := useAddonMigrations(); err != nil {
		return err
	}

	before, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		// Fresh database files have no version table yet.
		before = 0
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("migrate addons schema: %w", err)
	}

	after, err := SchemaVersion(ctx, db)
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	if after == before {
		log.Debug().Int64("schema_version", after).Msg("addons schema current")
		return nil
	}
	log.Info().
		Int64("from_version", before).
		Int64("to_version", after).
		Msg("addons schema migrated")
	return nil
}

// SchemaVersion returns the applied addons schema version.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	if err := useAddonMigrations(); err != nil {
		return 0, err
	}
	v, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("read addons schema version: %w", err)
	}
	return v, nil
}
