package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/gamify/internal/ports/secondary"
)

// SystemEventRepository implements secondary.SystemEventRepository with SQLite.
type SystemEventRepository struct {
	db *sqlx.DB
}

// NewSystemEventRepository creates a new SQLite system event repository.
func NewSystemEventRepository(db *sqlx.DB) *SystemEventRepository {
	return &SystemEventRepository{db: db}
}

type systemEventRow struct {
	ID          int64          `db:"id"`
	EventType   string         `db:"event_type"`
	Description sql.NullString `db:"description"`
	HeroID      sql.NullInt64  `db:"hero_id"`
	Data        sql.NullString `db:"data"`
	CreatedAt   sql.NullTime   `db:"created_at"`
}

// Create appends a new system event.
func (r *SystemEventRepository) Create(ctx context.Context, event *secondary.SystemEventRecord) error {
	var data sql.NullString
	var heroID sql.NullInt64

	if event.DataJSON != "" {
		data = sql.NullString{String: event.DataJSON, Valid: true}
	}
	if event.HeroID != nil {
		heroID = sql.NullInt64{Int64: *event.HeroID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO system_events (event_type, description, hero_id, data) VALUES (?, ?, ?, ?)",
		event.EventType, event.Description, heroID, data,
	)
	if err != nil {
		return fmt.Errorf("failed to create system event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read system event id: %w", err)
	}
	event.ID = id

	return nil
}

// ListRecent returns the newest events first. Events sharing a timestamp are
// ordered by insertion, newest first.
func (r *SystemEventRepository) ListRecent(ctx context.Context, limit int) ([]*secondary.SystemEventRecord, error) {
	query := "SELECT id, event_type, description, hero_id, data, created_at FROM system_events ORDER BY created_at DESC, id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []systemEventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list system events: %w", err)
	}

	events := make([]*secondary.SystemEventRecord, 0, len(rows))
	for _, row := range rows {
		record := &secondary.SystemEventRecord{
			ID:          row.ID,
			EventType:   row.EventType,
			Description: row.Description.String,
			DataJSON:    row.Data.String,
		}
		if row.HeroID.Valid {
			heroID := row.HeroID.Int64
			record.HeroID = &heroID
		}
		if row.CreatedAt.Valid {
			record.CreatedAt = formatTimestamp(row.CreatedAt.Time)
		}
		events = append(events, record)
	}

	return events, nil
}

// Ensure SystemEventRepository implements the interface
var _ secondary.SystemEventRepository = (*SystemEventRepository)(nil)
