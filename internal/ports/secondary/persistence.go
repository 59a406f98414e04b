// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrHeroNotFound is returned by HeroRepository lookups that match no row.
var ErrHeroNotFound = errors.New("hero not found")

// HeroRepository defines the secondary port for reading heroes.
// Heroes are owned by the host application; this port is read-only.
type HeroRepository interface {
	// GetByID retrieves a hero by its ID. Returns ErrHeroNotFound when missing.
	GetByID(ctx context.Context, id int64) (*HeroRecord, error)

	// Count returns the total number of heroes.
	Count(ctx context.Context) (int, error)

	// GetTopByPoints returns the hero with the most points (first row on ties).
	// Returns ErrHeroNotFound when there are no heroes.
	GetTopByPoints(ctx context.Context) (*HeroRecord, error)

	// ListRanking returns heroes ordered by points then experience, descending.
	ListRanking(ctx context.Context, limit int) ([]*HeroRecord, error)

	// ListIDs returns every hero ID in ascending order.
	ListIDs(ctx context.Context) ([]int64, error)
}

// HeroRecord represents a hero as read from persistence.
type HeroRecord struct {
	ID         int64
	Name       string
	Class      string
	Experience int
	Level      int
	Points     int // 0 when the heroes table predates the points column
}

// MissionRepository defines the secondary port for mission persistence.
type MissionRepository interface {
	// Create persists a new mission and sets its ID.
	Create(ctx context.Context, mission *MissionRecord) error

	// CountDailyOn counts missions created on date (YYYY-MM-DD) whose
	// difficulty carries the daily marker.
	CountDailyOn(ctx context.Context, date string) (int, error)

	// CountCompleted returns the number of completed missions.
	CountCompleted(ctx context.Context) (int, error)

	// CountCompletedByHero returns the number of completed missions for a hero.
	CountCompletedByHero(ctx context.Context, heroID int64) (int, error)

	// List retrieves missions matching the given filters, newest first.
	List(ctx context.Context, filters MissionFilters) ([]*MissionRecord, error)
}

// MissionRecord represents a mission as stored in persistence.
type MissionRecord struct {
	ID           int64
	Title        string
	Description  string // Empty string means null
	RewardXP     int
	RewardPoints int
	Difficulty   string
	HeroID       int64  // 0 means null
	HeroName     string // Populated by List when HeroID is set
	Completed    bool
	CreatedAt    string // Empty string on Create means database default
}

// MissionFilters contains filter options for querying missions.
type MissionFilters struct {
	DailyOnly bool
	Limit     int
}

// AchievementRepository defines the secondary port for achievement persistence.
type AchievementRepository interface {
	// Create persists a newly earned achievement and sets its ID.
	Create(ctx context.Context, achievement *AchievementRecord) error

	// Exists reports whether the hero already holds an achievement with this name.
	Exists(ctx context.Context, heroID int64, name string) (bool, error)

	// ListByHero retrieves a hero's achievements, most recent first.
	ListByHero(ctx context.Context, heroID int64) ([]*AchievementRecord, error)

	// Count returns the total number of earned achievements.
	Count(ctx context.Context) (int, error)

	// CountByHero returns the number of achievements a hero holds.
	CountByHero(ctx context.Context, heroID int64) (int, error)
}

// AchievementRecord represents an earned achievement as stored in persistence.
type AchievementRecord struct {
	ID          int64
	HeroID      int64
	Name        string
	Description string
	Icon        string
	EarnedAt    string
}

// SystemEventRepository defines the secondary port for the audit trail.
// System events are immutable: there is no update or delete.
type SystemEventRepository interface {
	// Create appends a new event and sets its ID.
	Create(ctx context.Context, event *SystemEventRecord) error

	// ListRecent returns the newest events first.
	ListRecent(ctx context.Context, limit int) ([]*SystemEventRecord, error)
}

// SystemEventRecord represents a system event as stored in persistence.
type SystemEventRecord struct {
	ID          int64
	EventType   string
	Description string
	HeroID      *int64 // nil means null
	DataJSON    string // Empty string means null
	CreatedAt   string
}
