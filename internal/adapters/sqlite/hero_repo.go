// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/gamify/internal/ports/secondary"
)

// HeroRepository implements secondary.HeroRepository with SQLite.
// Columns are selected by name, so the host may reorder or extend the table.
type HeroRepository struct {
	db *sqlx.DB
}

// NewHeroRepository creates a new SQLite hero repository.
func NewHeroRepository(db *sqlx.DB) *HeroRepository {
	return &HeroRepository{db: db}
}

type heroRow struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Class      string `db:"class"`
	Experience int    `db:"experience"`
	Level      int    `db:"level"`
	Points     int    `db:"points"`
}

func (h heroRow) record() *secondary.HeroRecord {
	return &secondary.HeroRecord{
		ID:         h.ID,
		Name:       h.Name,
		Class:      h.Class,
		Experience: h.Experience,
		Level:      h.Level,
		Points:     h.Points,
	}
}

// selectColumns builds the hero column list. Older hero tables have no points
// column; those heroes read as 0 points.
func (r *HeroRepository) selectColumns(ctx context.Context) (string, error) {
	points, err := r.pointsExpr(ctx)
	if err != nil {
		return "", err
	}
	return "id, COALESCE(name, '') AS name, COALESCE(class, '') AS class, " +
		"COALESCE(experience, 0) AS experience, COALESCE(level, 0) AS level, " +
		points + " AS points", nil
}

func (r *HeroRepository) pointsExpr(ctx context.Context) (string, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM pragma_table_info('heroes') WHERE name = 'points'",
	)
	if err != nil {
		return "", fmt.Errorf("failed to inspect heroes table: %w", err)
	}
	if count == 0 {
		return "0", nil
	}
	return "COALESCE(points, 0)", nil
}

// GetByID retrieves a hero by its ID.
func (r *HeroRepository) GetByID(ctx context.Context, id int64) (*secondary.HeroRecord, error) {
	columns, err := r.selectColumns(ctx)
	if err != nil {
		return nil, err
	}

	var row heroRow
	err = r.db.GetContext(ctx, &row, "SELECT "+columns+" FROM heroes WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("hero %d: %w", id, secondary.ErrHeroNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hero: %w", err)
	}

	return row.record(), nil
}

// Count returns the total number of heroes.
func (r *HeroRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM heroes"); err != nil {
		return 0, fmt.Errorf("failed to count heroes: %w", err)
	}
	return count, nil
}

// GetTopByPoints returns the hero with the most points.
func (r *HeroRepository) GetTopByPoints(ctx context.Context) (*secondary.HeroRecord, error) {
	columns, err := r.selectColumns(ctx)
	if err != nil {
		return nil, err
	}

	var row heroRow
	err = r.db.GetContext(ctx, &row, "SELECT "+columns+" FROM heroes ORDER BY points DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, secondary.ErrHeroNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get top hero: %w", err)
	}

	return row.record(), nil
}

// ListRanking returns heroes ordered by points then experience, descending.
func (r *HeroRepository) ListRanking(ctx context.Context, limit int) ([]*secondary.HeroRecord, error) {
	columns, err := r.selectColumns(ctx)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + columns + " FROM heroes ORDER BY points DESC, experience DESC, id ASC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []heroRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list hero ranking: %w", err)
	}

	heroes := make([]*secondary.HeroRecord, len(rows))
	for i, row := range rows {
		heroes[i] = row.record()
	}
	return heroes, nil
}

// ListIDs returns every hero ID in ascending order.
func (r *HeroRepository) ListIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, "SELECT id FROM heroes ORDER BY id ASC"); err != nil {
		return nil, fmt.Errorf("failed to list hero ids: %w", err)
	}
	return ids, nil
}

// Ensure HeroRepository implements the interface
var _ secondary.HeroRepository = (*HeroRepository)(nil)
