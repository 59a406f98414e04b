package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// SchemaSQL is the authoritative schema owned by this module.
// Hero and mission tables belong to the host application (see HostSchemaSQL).
const SchemaSQL = `
-- Achievements (one row per hero per earned achievement name)
CREATE TABLE IF NOT EXISTS achievements (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT,
	icon TEXT,
	hero_id INTEGER,
	earned_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (hero_id) REFERENCES heroes (id)
);

-- System events (append-only audit trail)
CREATE TABLE IF NOT EXISTS system_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_type TEXT NOT NULL,
	description TEXT,
	hero_id INTEGER,
	data TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (hero_id) REFERENCES heroes (id)
);
`

// IndexSQL adds lookup indexes for the achievement existence check and the
// recent events query. Not unique: (hero_id, name) uniqueness is enforced by
// the service layer.
const IndexSQL = `
CREATE INDEX IF NOT EXISTS idx_achievements_hero_name ON achievements(hero_id, name);
CREATE INDEX IF NOT EXISTS idx_system_events_created ON system_events(created_at);
`

// HostSchemaSQL mirrors the tables owned by the hero management application.
// Only used for local development databases and tests.
const HostSchemaSQL = `
CREATE TABLE IF NOT EXISTS heroes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	class TEXT NOT NULL,
	experience INTEGER DEFAULT 0,
	level INTEGER DEFAULT 1,
	points INTEGER DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS missions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	reward_xp INTEGER DEFAULT 100,
	reward_points INTEGER DEFAULT 10,
	difficulty TEXT DEFAULT 'Normal',
	completed BOOLEAN DEFAULT 0,
	hero_id INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (hero_id) REFERENCES heroes (id)
);
`

// InitSchema brings the gamification tables up to date.
// Safe to call on every startup: existing tables are left untouched.
func InitSchema(ctx context.Context, database *sqlx.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return RunMigrations(ctx, database, logger)
}

// CreateHostTables creates the heroes and missions tables if they are missing.
func CreateHostTables(ctx context.Context, database *sqlx.DB) error {
	if _, err := database.ExecContext(ctx, HostSchemaSQL); err != nil {
		return fmt.Errorf("failed to create host tables: %w", err)
	}
	return nil
}
