// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// setupTestDB goes through db.Open (the production bootstrap) and
// db.CreateHostTables, so tests run against the authoritative schema.
//
// DO NOT hardcode CREATE TABLE statements for achievements or system_events in
// test files. Use setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/example/gamify/internal/db"
)

// setupTestDB creates a file-backed database in a temp dir with the full schema.
// A file is used instead of :memory: so every pooled connection sees the same data.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	testDB, err := db.Open(ctx, filepath.Join(t.TempDir(), "test.sqlite"), nil)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.CreateHostTables(ctx, testDB); err != nil {
		t.Fatalf("failed to create host tables: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedHero inserts a test hero and returns its ID.
func seedHero(t *testing.T, db *sqlx.DB, name string, experience, level, points int) int64 {
	t.Helper()
	if name == "" {
		name = "Test Hero"
	}
	result, err := db.Exec(
		"INSERT INTO heroes (name, class, experience, level, points) VALUES (?, 'Guerreiro', ?, ?, ?)",
		name, experience, level, points,
	)
	if err != nil {
		t.Fatalf("failed to seed hero: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedMission inserts a test mission and returns its ID.
// heroID 0 leaves the mission unassigned; createdAt "" takes the default.
func seedMission(t *testing.T, db *sqlx.DB, title, difficulty string, heroID int64, completed bool, createdAt string) int64 {
	t.Helper()
	if title == "" {
		title = "Test Mission"
	}
	if difficulty == "" {
		difficulty = "Normal"
	}
	var hero any
	if heroID > 0 {
		hero = heroID
	}
	query := "INSERT INTO missions (title, difficulty, hero_id, completed) VALUES (?, ?, ?, ?)"
	args := []any{title, difficulty, hero, completed}
	if createdAt != "" {
		query = "INSERT INTO missions (title, difficulty, hero_id, completed, created_at) VALUES (?, ?, ?, ?, ?)"
		args = append(args, createdAt)
	}
	result, err := db.Exec(query, args...)
	if err != nil {
		t.Fatalf("failed to seed mission: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}
