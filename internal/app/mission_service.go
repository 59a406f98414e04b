package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	coremission "github.com/example/gamify/internal/core/mission"
	"github.com/example/gamify/internal/ports/primary"
	"github.com/example/gamify/internal/ports/secondary"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// MissionServiceImpl implements the MissionService interface.
type MissionServiceImpl struct {
	missionRepo secondary.MissionRepository
	picker      coremission.Picker
	now         func() time.Time
	logger      *slog.Logger
}

// NewMissionService creates a new MissionService with injected dependencies.
// now is read in UTC; it decides which calendar day "daily" refers to.
func NewMissionService(
	missionRepo secondary.MissionRepository,
	picker coremission.Picker,
	now func() time.Time,
	logger *slog.Logger,
) *MissionServiceImpl {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MissionServiceImpl{
		missionRepo: missionRepo,
		picker:      picker,
		now:         now,
		logger:      logger,
	}
}

// GenerateDailyMissions draws today's missions from the pool and stores them
// once per day. The drawn templates are returned unmodified either way.
func (s *MissionServiceImpl) GenerateDailyMissions(ctx context.Context) (*primary.DailyMissionsResult, error) {
	now := s.now().UTC()
	date := now.Format(dateLayout)

	// 1. Select templates
	selected := coremission.SelectDaily(coremission.DailyPool(), s.picker)

	// 2. Check guard
	existing, err := s.missionRepo.CountDailyOn(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check daily missions: %w", err)
	}

	result := &primary.DailyMissionsResult{
		Date:     date,
		Missions: make([]primary.MissionTemplate, len(selected)),
	}
	for i, t := range selected {
		result.Missions[i] = templateToPrimary(t)
	}

	guard := coremission.CanInsertDailyMissions(coremission.DailyStateContext{
		Date:              date,
		ExistingToday:     existing,
		SelectedTemplates: len(selected),
	})
	if !guard.Allowed {
		s.logger.DebugContext(ctx, "skipping daily mission insert", "reason", guard.Reason)
		return result, nil
	}

	// 3. Persist tagged copies
	createdAt := now.Format(timestampLayout)
	for _, t := range selected {
		daily := coremission.AsDaily(t)
		record := &secondary.MissionRecord{
			Title:        daily.Title,
			Description:  daily.Description,
			RewardXP:     daily.RewardXP,
			RewardPoints: daily.RewardPoints,
			Difficulty:   daily.Difficulty,
			CreatedAt:    createdAt,
		}
		if err := s.missionRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to create daily mission: %w", err)
		}
	}

	result.Inserted = true
	s.logger.InfoContext(ctx, "daily missions generated", "date", date, "count", len(selected))

	return result, nil
}

// ListMissions lists missions with optional filters, newest first.
func (s *MissionServiceImpl) ListMissions(ctx context.Context, filters primary.MissionFilters) ([]*primary.Mission, error) {
	records, err := s.missionRepo.List(ctx, secondary.MissionFilters{
		DailyOnly: filters.DailyOnly,
		Limit:     filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	missions := make([]*primary.Mission, len(records))
	for i, r := range records {
		missions[i] = &primary.Mission{
			ID:           r.ID,
			Title:        r.Title,
			Description:  r.Description,
			RewardXP:     r.RewardXP,
			RewardPoints: r.RewardPoints,
			Difficulty:   r.Difficulty,
			HeroID:       r.HeroID,
			HeroName:     r.HeroName,
			Completed:    r.Completed,
			Daily:        coremission.IsDailyDifficulty(r.Difficulty),
			CreatedAt:    r.CreatedAt,
		}
	}
	return missions, nil
}

func templateToPrimary(t coremission.Template) primary.MissionTemplate {
	return primary.MissionTemplate{
		Title:        t.Title,
		Description:  t.Description,
		RewardXP:     t.RewardXP,
		RewardPoints: t.RewardPoints,
		Difficulty:   t.Difficulty,
		Type:         t.Type,
	}
}

// Ensure MissionServiceImpl implements the interface
var _ primary.MissionService = (*MissionServiceImpl)(nil)
