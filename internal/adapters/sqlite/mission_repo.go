package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	coremission "github.com/example/gamify/internal/core/mission"
	"github.com/example/gamify/internal/ports/secondary"
)

// MissionRepository implements secondary.MissionRepository with SQLite.
// The missions table belongs to the host application.
type MissionRepository struct {
	db *sqlx.DB
}

// NewMissionRepository creates a new SQLite mission repository.
func NewMissionRepository(db *sqlx.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

type missionRow struct {
	ID           int64          `db:"id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	RewardXP     int            `db:"reward_xp"`
	RewardPoints int            `db:"reward_points"`
	Difficulty   string         `db:"difficulty"`
	HeroID       sql.NullInt64  `db:"hero_id"`
	HeroName     sql.NullString `db:"hero_name"`
	Completed    bool           `db:"completed"`
	CreatedAt    sql.NullTime   `db:"created_at"`
}

// Create persists a new mission.
func (r *MissionRepository) Create(ctx context.Context, mission *secondary.MissionRecord) error {
	var desc sql.NullString
	if mission.Description != "" {
		desc = sql.NullString{String: mission.Description, Valid: true}
	}

	var heroID sql.NullInt64
	if mission.HeroID > 0 {
		heroID = sql.NullInt64{Int64: mission.HeroID, Valid: true}
	}

	query := "INSERT INTO missions (title, description, reward_xp, reward_points, difficulty, hero_id, completed) VALUES (?, ?, ?, ?, ?, ?, ?)"
	args := []any{mission.Title, desc, mission.RewardXP, mission.RewardPoints, mission.Difficulty, heroID, mission.Completed}
	if mission.CreatedAt != "" {
		query = "INSERT INTO missions (title, description, reward_xp, reward_points, difficulty, hero_id, completed, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
		args = append(args, mission.CreatedAt)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create mission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read mission id: %w", err)
	}
	mission.ID = id

	return nil
}

// CountDailyOn counts daily-tagged missions created on the given date.
func (r *MissionRepository) CountDailyOn(ctx context.Context, date string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM missions WHERE DATE(created_at) = ? AND difficulty LIKE ?",
		date, "%"+coremission.DailyMarker+"%",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to count daily missions: %w", err)
	}
	return count, nil
}

// CountCompleted returns the number of completed missions.
func (r *MissionRepository) CountCompleted(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM missions WHERE completed = 1"); err != nil {
		return 0, fmt.Errorf("failed to count completed missions: %w", err)
	}
	return count, nil
}

// CountCompletedByHero returns the number of completed missions for a hero.
func (r *MissionRepository) CountCompletedByHero(ctx context.Context, heroID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM missions WHERE hero_id = ? AND completed = 1",
		heroID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed missions: %w", err)
	}
	return count, nil
}

// List retrieves missions matching the given filters.
func (r *MissionRepository) List(ctx context.Context, filters secondary.MissionFilters) ([]*secondary.MissionRecord, error) {
	query := `SELECT m.id, m.title, m.description,
		COALESCE(m.reward_xp, 0) AS reward_xp, COALESCE(m.reward_points, 0) AS reward_points,
		COALESCE(m.difficulty, '') AS difficulty, m.hero_id, h.name AS hero_name,
		COALESCE(m.completed, 0) AS completed, m.created_at
		FROM missions m LEFT JOIN heroes h ON h.id = m.hero_id`
	args := []any{}

	if filters.DailyOnly {
		query += " WHERE m.difficulty LIKE ?"
		args = append(args, "%"+coremission.DailyMarker+"%")
	}

	query += " ORDER BY m.created_at DESC, m.id DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	var rows []missionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	missions := make([]*secondary.MissionRecord, 0, len(rows))
	for _, row := range rows {
		record := &secondary.MissionRecord{
			ID:           row.ID,
			Title:        row.Title,
			Description:  row.Description.String,
			RewardXP:     row.RewardXP,
			RewardPoints: row.RewardPoints,
			Difficulty:   row.Difficulty,
			HeroID:       row.HeroID.Int64,
			HeroName:     row.HeroName.String,
			Completed:    row.Completed,
		}
		if row.CreatedAt.Valid {
			record.CreatedAt = formatTimestamp(row.CreatedAt.Time)
		}
		missions = append(missions, record)
	}

	return missions, nil
}

// Ensure MissionRepository implements the interface
var _ secondary.MissionRepository = (*MissionRepository)(nil)

// timestampLayout matches SQLite's CURRENT_TIMESTAMP text format.
const timestampLayout = "2006-01-02 15:04:05"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
