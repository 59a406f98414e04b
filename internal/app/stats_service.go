package app

import (
	"context"
	"errors"
	"fmt"

	coreevent "github.com/example/gamify/internal/core/event"
	corescore "github.com/example/gamify/internal/core/score"
	"github.com/example/gamify/internal/ports/primary"
	"github.com/example/gamify/internal/ports/secondary"
)

// DefaultRankingLimit is how many heroes the ranking shows when no limit is given.
const DefaultRankingLimit = 10

// StatsServiceImpl implements the StatsService interface.
type StatsServiceImpl struct {
	heroRepo        secondary.HeroRepository
	missionRepo     secondary.MissionRepository
	achievementRepo secondary.AchievementRepository
	eventRepo       secondary.SystemEventRepository
}

// NewStatsService creates a new StatsService with injected dependencies.
func NewStatsService(
	heroRepo secondary.HeroRepository,
	missionRepo secondary.MissionRepository,
	achievementRepo secondary.AchievementRepository,
	eventRepo secondary.SystemEventRepository,
) *StatsServiceImpl {
	return &StatsServiceImpl{
		heroRepo:        heroRepo,
		missionRepo:     missionRepo,
		achievementRepo: achievementRepo,
		eventRepo:       eventRepo,
	}
}

// GetSystemStats aggregates counts, the top hero by points, and the newest events.
func (s *StatsServiceImpl) GetSystemStats(ctx context.Context) (*primary.SystemStats, error) {
	heroes, err := s.heroRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count heroes: %w", err)
	}

	achievements, err := s.achievementRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count achievements: %w", err)
	}

	completed, err := s.missionRepo.CountCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed missions: %w", err)
	}

	top := primary.TopHero{Name: primary.NoTopHeroName}
	hero, err := s.heroRepo.GetTopByPoints(ctx)
	switch {
	case errors.Is(err, secondary.ErrHeroNotFound):
	case err != nil:
		return nil, fmt.Errorf("failed to get top hero: %w", err)
	default:
		top = primary.TopHero{Name: hero.Name, Points: hero.Points}
	}

	events, err := s.eventRepo.ListRecent(ctx, coreevent.DefaultRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent events: %w", err)
	}
	recent := make([]primary.RecentEvent, 0, len(events))
	for _, e := range events {
		recent = append(recent, primary.RecentEvent{
			Type:        e.EventType,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}

	return &primary.SystemStats{
		TotalHeroes:       heroes,
		TotalAchievements: achievements,
		CompletedMissions: completed,
		TopHero:           top,
		RecentEvents:      recent,
	}, nil
}

// CalculateHeroScore returns the hero's composite score, 0 when the hero does not exist.
func (s *StatsServiceImpl) CalculateHeroScore(ctx context.Context, heroID int64) (int, error) {
	breakdown, err := s.GetScoreBreakdown(ctx, heroID)
	if err != nil {
		return 0, err
	}
	return breakdown.Total, nil
}

// GetScoreBreakdown returns each weighted score component. Unknown heroes
// yield a zero breakdown with Found=false.
func (s *StatsServiceImpl) GetScoreBreakdown(ctx context.Context, heroID int64) (*primary.ScoreBreakdown, error) {
	hero, err := s.heroRepo.GetByID(ctx, heroID)
	if errors.Is(err, secondary.ErrHeroNotFound) {
		return &primary.ScoreBreakdown{HeroID: heroID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hero: %w", err)
	}
	return s.breakdownFor(ctx, hero)
}

// GetRanking returns heroes ordered by points then experience with their scores.
func (s *StatsServiceImpl) GetRanking(ctx context.Context, limit int) ([]*primary.RankingEntry, error) {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	heroes, err := s.heroRepo.ListRanking(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list ranking: %w", err)
	}

	entries := make([]*primary.RankingEntry, len(heroes))
	for i, hero := range heroes {
		breakdown, err := s.breakdownFor(ctx, hero)
		if err != nil {
			return nil, err
		}
		entries[i] = &primary.RankingEntry{
			Position:   i + 1,
			HeroID:     hero.ID,
			Name:       hero.Name,
			Class:      hero.Class,
			Level:      hero.Level,
			Experience: hero.Experience,
			Points:     hero.Points,
			Score:      breakdown.Total,
		}
	}
	return entries, nil
}

func (s *StatsServiceImpl) breakdownFor(ctx context.Context, hero *secondary.HeroRecord) (*primary.ScoreBreakdown, error) {
	achievements, err := s.achievementRepo.CountByHero(ctx, hero.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count achievements: %w", err)
	}

	completed, err := s.missionRepo.CountCompletedByHero(ctx, hero.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed missions: %w", err)
	}

	b := corescore.Calculate(corescore.Inputs{
		Points:            hero.Points,
		Level:             hero.Level,
		Experience:        hero.Experience,
		Achievements:      achievements,
		CompletedMissions: completed,
	})

	return &primary.ScoreBreakdown{
		HeroID:            hero.ID,
		HeroName:          hero.Name,
		Found:             true,
		Points:            b.Points,
		LevelBonus:        b.LevelBonus,
		ExperienceBonus:   b.ExperienceBonus,
		AchievementBonus:  b.AchievementBonus,
		MissionBonus:      b.MissionBonus,
		Achievements:      achievements,
		CompletedMissions: completed,
		Total:             b.Total(),
	}, nil
}

// Ensure StatsServiceImpl implements the interface
var _ primary.StatsService = (*StatsServiceImpl)(nil)
