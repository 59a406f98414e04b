package primary

import "context"

// StatsService defines the primary port for aggregate statistics and scoring.
type StatsService interface {
	// GetSystemStats aggregates counts, the top hero, and recent events.
	GetSystemStats(ctx context.Context) (*SystemStats, error)

	// CalculateHeroScore returns the composite score, 0 for unknown heroes.
	CalculateHeroScore(ctx context.Context, heroID int64) (int, error)

	// GetScoreBreakdown returns each weighted score component.
	GetScoreBreakdown(ctx context.Context, heroID int64) (*ScoreBreakdown, error)

	// GetRanking returns heroes ordered by points then experience.
	GetRanking(ctx context.Context, limit int) ([]*RankingEntry, error)
}

// NoTopHeroName is reported as the top hero when no heroes exist.
const NoTopHeroName = "Nenhum"

// SystemStats is the aggregate statistics payload.
type SystemStats struct {
	TotalHeroes       int           `json:"total_heroes"`
	TotalAchievements int           `json:"total_achievements"`
	CompletedMissions int           `json:"completed_missions"`
	TopHero           TopHero       `json:"top_hero"`
	RecentEvents      []RecentEvent `json:"recent_events"`
}

// TopHero names the hero with the most points.
type TopHero struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// RecentEvent is a system event as shown in the stats payload.
type RecentEvent struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// ScoreBreakdown details how a hero's score was derived.
type ScoreBreakdown struct {
	HeroID            int64
	HeroName          string
	Found             bool
	Points            int
	LevelBonus        int
	ExperienceBonus   int
	AchievementBonus  int
	MissionBonus      int
	Achievements      int
	CompletedMissions int
	Total             int
}

// RankingEntry is one row of the hero ranking.
type RankingEntry struct {
	Position   int
	HeroID     int64
	Name       string
	Class      string
	Level      int
	Experience int
	Points     int
	Score      int
}
