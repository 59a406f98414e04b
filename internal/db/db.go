package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver registered by mattn/go-sqlite3.
const DriverName = "sqlite3"

// Open opens the SQLite database at path and bootstraps the gamification schema.
// The parent directory is created when missing. The caller owns the returned handle.
// A nil logger discards migration logs.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sqlx.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path must not be empty")
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	database, err := sqlx.Open(DriverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := InitSchema(ctx, database, logger); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// dsn builds the connection string. Writers wait on the file lock instead of
// failing with SQLITE_BUSY.
func dsn(path string) string {
	return "file:" + path + "?_busy_timeout=5000"
}
