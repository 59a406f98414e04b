// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import "context"

// MissionService defines the primary port for mission operations.
type MissionService interface {
	// GenerateDailyMissions selects today's daily missions and persists them
	// unless daily missions already exist for today.
	GenerateDailyMissions(ctx context.Context) (*DailyMissionsResult, error)

	// ListMissions lists missions with optional filters.
	ListMissions(ctx context.Context, filters MissionFilters) ([]*Mission, error)
}

// MissionTemplate is a mission blueprint as selected by the daily generator.
type MissionTemplate struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	RewardXP     int    `json:"reward_xp"`
	RewardPoints int    `json:"reward_points"`
	Difficulty   string `json:"difficulty"`
	Type         string `json:"type"`
}

// DailyMissionsResult contains the outcome of daily mission generation.
// Missions holds the selected templates as drawn from the pool, whether or
// not they were persisted.
type DailyMissionsResult struct {
	Date     string
	Missions []MissionTemplate
	Inserted bool
}

// MissionFilters contains filter options for listing missions.
type MissionFilters struct {
	DailyOnly bool
	Limit     int
}

// Mission represents a mission entity at the port boundary.
type Mission struct {
	ID           int64
	Title        string
	Description  string
	RewardXP     int
	RewardPoints int
	Difficulty   string
	HeroID       int64 // 0 when unassigned
	HeroName     string
	Completed    bool
	Daily        bool
	CreatedAt    string
}
