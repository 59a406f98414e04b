package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/gamify/internal/ports/secondary"
)

// AchievementRepository implements secondary.AchievementRepository with SQLite.
type AchievementRepository struct {
	db *sqlx.DB
}

// NewAchievementRepository creates a new SQLite achievement repository.
func NewAchievementRepository(db *sqlx.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

type achievementRow struct {
	ID          int64          `db:"id"`
	HeroID      sql.NullInt64  `db:"hero_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Icon        sql.NullString `db:"icon"`
	EarnedAt    sql.NullTime   `db:"earned_at"`
}

// Create persists a newly earned achievement. earned_at takes the database default.
func (r *AchievementRepository) Create(ctx context.Context, achievement *secondary.AchievementRecord) error {
	if achievement.HeroID <= 0 {
		return fmt.Errorf("achievement hero ID must be set")
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO achievements (name, description, icon, hero_id) VALUES (?, ?, ?, ?)",
		achievement.Name, achievement.Description, achievement.Icon, achievement.HeroID,
	)
	if err != nil {
		return fmt.Errorf("failed to create achievement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read achievement id: %w", err)
	}
	achievement.ID = id

	return nil
}

// Exists reports whether the hero already holds the named achievement.
func (r *AchievementRepository) Exists(ctx context.Context, heroID int64, name string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM achievements WHERE hero_id = ? AND name = ?",
		heroID, name,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check achievement: %w", err)
	}
	return count > 0, nil
}

// ListByHero retrieves a hero's achievements, most recent first.
func (r *AchievementRepository) ListByHero(ctx context.Context, heroID int64) ([]*secondary.AchievementRecord, error) {
	var rows []achievementRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, hero_id, name, description, icon, earned_at FROM achievements WHERE hero_id = ? ORDER BY earned_at DESC, id DESC",
		heroID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	achievements := make([]*secondary.AchievementRecord, 0, len(rows))
	for _, row := range rows {
		record := &secondary.AchievementRecord{
			ID:          row.ID,
			HeroID:      row.HeroID.Int64,
			Name:        row.Name,
			Description: row.Description.String,
			Icon:        row.Icon.String,
		}
		if row.EarnedAt.Valid {
			record.EarnedAt = formatTimestamp(row.EarnedAt.Time)
		}
		achievements = append(achievements, record)
	}

	return achievements, nil
}

// Count returns the total number of earned achievements.
func (r *AchievementRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM achievements"); err != nil {
		return 0, fmt.Errorf("failed to count achievements: %w", err)
	}
	return count, nil
}

// CountByHero returns the number of achievements a hero holds.
func (r *AchievementRepository) CountByHero(ctx context.Context, heroID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM achievements WHERE hero_id = ?", heroID); err != nil {
		return 0, fmt.Errorf("failed to count achievements: %w", err)
	}
	return count, nil
}

// Ensure AchievementRepository implements the interface
var _ secondary.AchievementRepository = (*AchievementRepository)(nil)
