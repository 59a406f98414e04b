package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(ctx context.Context, tx *sqlx.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_achievements_and_system_events",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_achievement_and_event_indexes",
		Up:      migrationV2,
	},
}

// LatestVersion returns the highest known migration version.
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

// RunMigrations executes all pending migrations. A database already past the
// latest known version is rejected rather than written to.
func RunMigrations(ctx context.Context, database *sqlx.DB, logger *slog.Logger) error {
	_, err := database.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	currentVersion, err := CurrentVersion(ctx, database)
	if err != nil {
		return err
	}
	if latest := LatestVersion(); currentVersion > latest {
		return fmt.Errorf("database schema version %d is newer than this build supports (%d)", currentVersion, latest)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		logger.DebugContext(ctx, "running migration", "version", migration.Version, "name", migration.Name)

		tx, err := database.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// CurrentVersion returns the highest applied migration version, 0 for a fresh database.
func CurrentVersion(ctx context.Context, database *sqlx.DB) (int, error) {
	var version int
	if err := database.GetContext(ctx, &version, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
		return 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	return version, nil
}

// migrationV1 creates the achievements and system_events tables.
// Uses IF NOT EXISTS so databases created before schema_version existed keep their data.
func migrationV1(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx, SchemaSQL)
	return err
}

func migrationV2(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx, IndexSQL)
	return err
}
