package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	coremission "github.com/example/gamify/internal/core/mission"
	"github.com/example/gamify/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure mocks implement the interfaces
var (
	_ secondary.HeroRepository        = (*mockHeroRepository)(nil)
	_ secondary.MissionRepository     = (*mockMissionRepository)(nil)
	_ secondary.AchievementRepository = (*mockAchievementRepository)(nil)
	_ secondary.SystemEventRepository = (*mockSystemEventRepository)(nil)
)

// mockHeroRepository implements secondary.HeroRepository for testing.
type mockHeroRepository struct {
	heroes map[int64]*secondary.HeroRecord
	getErr error
}

func newMockHeroRepository() *mockHeroRepository {
	return &mockHeroRepository{
		heroes: make(map[int64]*secondary.HeroRecord),
	}
}

func (m *mockHeroRepository) add(hero *secondary.HeroRecord) {
	m.heroes[hero.ID] = hero
}

func (m *mockHeroRepository) sorted() []*secondary.HeroRecord {
	heroes := make([]*secondary.HeroRecord, 0, len(m.heroes))
	for _, h := range m.heroes {
		heroes = append(heroes, h)
	}
	sort.Slice(heroes, func(i, j int) bool {
		if heroes[i].Points != heroes[j].Points {
			return heroes[i].Points > heroes[j].Points
		}
		if heroes[i].Experience != heroes[j].Experience {
			return heroes[i].Experience > heroes[j].Experience
		}
		return heroes[i].ID < heroes[j].ID
	})
	return heroes
}

func (m *mockHeroRepository) GetByID(ctx context.Context, id int64) (*secondary.HeroRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if hero, ok := m.heroes[id]; ok {
		return hero, nil
	}
	return nil, fmt.Errorf("hero %d: %w", id, secondary.ErrHeroNotFound)
}

func (m *mockHeroRepository) Count(ctx context.Context) (int, error) {
	return len(m.heroes), nil
}

func (m *mockHeroRepository) GetTopByPoints(ctx context.Context) (*secondary.HeroRecord, error) {
	heroes := m.sorted()
	if len(heroes) == 0 {
		return nil, secondary.ErrHeroNotFound
	}
	return heroes[0], nil
}

func (m *mockHeroRepository) ListRanking(ctx context.Context, limit int) ([]*secondary.HeroRecord, error) {
	heroes := m.sorted()
	if limit > 0 && len(heroes) > limit {
		heroes = heroes[:limit]
	}
	return heroes, nil
}

func (m *mockHeroRepository) ListIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(m.heroes))
	for id := range m.heroes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// mockMissionRepository implements secondary.MissionRepository for testing.
type mockMissionRepository struct {
	missions  []*secondary.MissionRecord
	nextID    int64
	createErr error
	countErr  error
}

func newMockMissionRepository() *mockMissionRepository {
	return &mockMissionRepository{nextID: 1}
}

func (m *mockMissionRepository) Create(ctx context.Context, mission *secondary.MissionRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	mission.ID = m.nextID
	m.nextID++
	m.missions = append(m.missions, mission)
	return nil
}

func (m *mockMissionRepository) CountDailyOn(ctx context.Context, date string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	count := 0
	for _, mission := range m.missions {
		if strings.HasPrefix(mission.CreatedAt, date) && coremission.IsDailyDifficulty(mission.Difficulty) {
			count++
		}
	}
	return count, nil
}

func (m *mockMissionRepository) CountCompleted(ctx context.Context) (int, error) {
	count := 0
	for _, mission := range m.missions {
		if mission.Completed {
			count++
		}
	}
	return count, nil
}

func (m *mockMissionRepository) CountCompletedByHero(ctx context.Context, heroID int64) (int, error) {
	count := 0
	for _, mission := range m.missions {
		if mission.Completed && mission.HeroID == heroID {
			count++
		}
	}
	return count, nil
}

func (m *mockMissionRepository) List(ctx context.Context, filters secondary.MissionFilters) ([]*secondary.MissionRecord, error) {
	var result []*secondary.MissionRecord
	for i := len(m.missions) - 1; i >= 0; i-- {
		mission := m.missions[i]
		if filters.DailyOnly && !coremission.IsDailyDifficulty(mission.Difficulty) {
			continue
		}
		result = append(result, mission)
	}
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

// mockAchievementRepository implements secondary.AchievementRepository for testing.
type mockAchievementRepository struct {
	achievements []*secondary.AchievementRecord
	nextID       int64
	createErr    error
	existsErr    error
}

func newMockAchievementRepository() *mockAchievementRepository {
	return &mockAchievementRepository{nextID: 1}
}

func (m *mockAchievementRepository) Create(ctx context.Context, achievement *secondary.AchievementRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	achievement.ID = m.nextID
	m.nextID++
	m.achievements = append(m.achievements, achievement)
	return nil
}

func (m *mockAchievementRepository) Exists(ctx context.Context, heroID int64, name string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	for _, a := range m.achievements {
		if a.HeroID == heroID && a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAchievementRepository) ListByHero(ctx context.Context, heroID int64) ([]*secondary.AchievementRecord, error) {
	var result []*secondary.AchievementRecord
	for i := len(m.achievements) - 1; i >= 0; i-- {
		if m.achievements[i].HeroID == heroID {
			result = append(result, m.achievements[i])
		}
	}
	return result, nil
}

func (m *mockAchievementRepository) Count(ctx context.Context) (int, error) {
	return len(m.achievements), nil
}

func (m *mockAchievementRepository) CountByHero(ctx context.Context, heroID int64) (int, error) {
	count := 0
	for _, a := range m.achievements {
		if a.HeroID == heroID {
			count++
		}
	}
	return count, nil
}

// mockSystemEventRepository implements secondary.SystemEventRepository for testing.
type mockSystemEventRepository struct {
	events    []*secondary.SystemEventRecord
	nextID    int64
	createErr error
}

func newMockSystemEventRepository() *mockSystemEventRepository {
	return &mockSystemEventRepository{nextID: 1}
}

func (m *mockSystemEventRepository) Create(ctx context.Context, event *secondary.SystemEventRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	event.ID = m.nextID
	m.nextID++
	if event.CreatedAt == "" {
		event.CreatedAt = "2024-05-01 12:00:00"
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockSystemEventRepository) ListRecent(ctx context.Context, limit int) ([]*secondary.SystemEventRecord, error) {
	var result []*secondary.SystemEventRecord
	for i := len(m.events) - 1; i >= 0; i-- {
		result = append(result, m.events[i])
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// scriptedPicker returns queued values in order, then zeros.
type scriptedPicker struct {
	values []int
}

func (p *scriptedPicker) IntN(n int) int {
	if len(p.values) == 0 {
		return 0
	}
	v := p.values[0]
	p.values = p.values[1:]
	return v % n
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
