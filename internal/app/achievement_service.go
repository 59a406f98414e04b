package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	coreachievement "github.com/example/gamify/internal/core/achievement"
	coreevent "github.com/example/gamify/internal/core/event"
	"github.com/example/gamify/internal/ports/primary"
	"github.com/example/gamify/internal/ports/secondary"
)

// AchievementServiceImpl implements the AchievementService interface.
type AchievementServiceImpl struct {
	heroRepo        secondary.HeroRepository
	achievementRepo secondary.AchievementRepository
	eventService    primary.EventService
	logger          *slog.Logger
}

// NewAchievementService creates a new AchievementService with injected dependencies.
func NewAchievementService(
	heroRepo secondary.HeroRepository,
	achievementRepo secondary.AchievementRepository,
	eventService primary.EventService,
	logger *slog.Logger,
) *AchievementServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &AchievementServiceImpl{
		heroRepo:        heroRepo,
		achievementRepo: achievementRepo,
		eventService:    eventService,
		logger:          logger,
	}
}

// CheckAchievements grants every catalog achievement the hero newly qualifies for.
// Each grant is stored and then announced as an achievement_earned event; the
// two writes are independent.
func (s *AchievementServiceImpl) CheckAchievements(ctx context.Context, heroID int64) ([]*primary.AchievementDefinition, error) {
	// 1. Load hero
	hero, err := s.heroRepo.GetByID(ctx, heroID)
	if errors.Is(err, secondary.ErrHeroNotFound) {
		return []*primary.AchievementDefinition{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hero: %w", err)
	}

	// 2. Collect owned names
	catalog := coreachievement.Catalog()
	owned := make(map[string]bool, len(catalog))
	for _, def := range catalog {
		exists, err := s.achievementRepo.Exists(ctx, heroID, def.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check achievement %q: %w", def.Name, err)
		}
		owned[def.Name] = exists
	}

	// 3. Evaluate and grant
	stats := coreachievement.HeroStats{Level: hero.Level, Points: hero.Points}
	granted := []*primary.AchievementDefinition{}
	for _, def := range coreachievement.Evaluate(catalog, stats, owned) {
		record := &secondary.AchievementRecord{
			HeroID:      heroID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
		}
		if err := s.achievementRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to grant achievement %q: %w", def.Name, err)
		}

		id := heroID
		err := s.eventService.LogEvent(ctx, primary.LogEventRequest{
			EventType:   coreevent.TypeAchievementEarned,
			Description: coreevent.AchievementEarnedDescription(def.Name),
			HeroID:      &id,
			Data:        coreevent.AchievementEarnedData(def.Name, def.Icon),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to log achievement %q: %w", def.Name, err)
		}

		s.logger.InfoContext(ctx, "achievement granted", "hero_id", heroID, "achievement", def.Name)
		granted = append(granted, &primary.AchievementDefinition{
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
		})
	}

	return granted, nil
}

// ListHeroAchievements returns a hero's earned achievements, most recent first.
// Rows stored without an icon or description are filled from the catalog.
func (s *AchievementServiceImpl) ListHeroAchievements(ctx context.Context, heroID int64) ([]*primary.HeroAchievement, error) {
	records, err := s.achievementRepo.ListByHero(ctx, heroID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	achievements := make([]*primary.HeroAchievement, len(records))
	for i, r := range records {
		a := &primary.HeroAchievement{
			Name:        r.Name,
			Description: r.Description,
			Icon:        r.Icon,
			EarnedAt:    r.EarnedAt,
		}
		if def, ok := coreachievement.Lookup(r.Name); ok {
			if a.Icon == "" {
				a.Icon = def.Icon
			}
			if a.Description == "" {
				a.Description = def.Description
			}
		}
		achievements[i] = a
	}
	return achievements, nil
}

// BackfillAchievements runs CheckAchievements for every hero in ID order.
// It stops at the first storage error.
func (s *AchievementServiceImpl) BackfillAchievements(ctx context.Context) (*primary.BackfillResult, error) {
	ids, err := s.heroRepo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list heroes: %w", err)
	}

	result := &primary.BackfillResult{
		GrantedByHero: make(map[int64][]string),
	}
	for _, id := range ids {
		granted, err := s.CheckAchievements(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("hero %d: %w", id, err)
		}
		result.HeroesChecked++
		if len(granted) == 0 {
			continue
		}
		names := make([]string, len(granted))
		for i, def := range granted {
			names[i] = def.Name
		}
		result.GrantedByHero[id] = names
		result.TotalGranted += len(granted)
	}

	s.logger.DebugContext(ctx, "achievement backfill finished",
		"heroes", result.HeroesChecked, "granted", result.TotalGranted)

	return result, nil
}

// Ensure AchievementServiceImpl implements the interface
var _ primary.AchievementService = (*AchievementServiceImpl)(nil)
