package primary

import "context"

// AchievementService defines the primary port for achievement operations.
type AchievementService interface {
	// CheckAchievements grants every achievement the hero newly qualifies for
	// and returns them in catalog order. Unknown heroes yield an empty slice.
	CheckAchievements(ctx context.Context, heroID int64) ([]*AchievementDefinition, error)

	// ListHeroAchievements returns a hero's earned achievements, most recent first.
	ListHeroAchievements(ctx context.Context, heroID int64) ([]*HeroAchievement, error)

	// BackfillAchievements runs CheckAchievements for every hero.
	BackfillAchievements(ctx context.Context) (*BackfillResult, error)
}

// AchievementDefinition describes an achievement that can be earned.
type AchievementDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// HeroAchievement is an achievement a hero has earned.
type HeroAchievement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	EarnedAt    string `json:"earned_at"`
}

// BackfillResult summarizes a backfill run.
type BackfillResult struct {
	HeroesChecked int
	TotalGranted  int
	GrantedByHero map[int64][]string // only heroes that earned something
}
