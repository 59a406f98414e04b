package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/example/gamify/internal/ports/primary"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// mockMissionService implements primary.MissionService for testing
type mockMissionService struct {
	generateFn     func(ctx context.Context) (*primary.DailyMissionsResult, error)
	listMissionsFn func(ctx context.Context, filters primary.MissionFilters) ([]*primary.Mission, error)

	// Track calls for verification
	lastFilters primary.MissionFilters
}

func (m *mockMissionService) GenerateDailyMissions(ctx context.Context) (*primary.DailyMissionsResult, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx)
	}
	return &primary.DailyMissionsResult{
		Date: "2024-05-01",
		Missions: []primary.MissionTemplate{
			{Title: "Treino Matinal", Difficulty: "Normal", RewardXP: 150, RewardPoints: 15, Type: "daily"},
			{Title: "Explorador Corajoso", Difficulty: "Normal", RewardXP: 100, RewardPoints: 20, Type: "daily"},
		},
		Inserted: true,
	}, nil
}

func (m *mockMissionService) ListMissions(ctx context.Context, filters primary.MissionFilters) ([]*primary.Mission, error) {
	m.lastFilters = filters
	if m.listMissionsFn != nil {
		return m.listMissionsFn(ctx, filters)
	}
	return []*primary.Mission{}, nil
}

func TestMissionAdapter_Daily(t *testing.T) {
	mock := &mockMissionService{}
	var buf bytes.Buffer
	adapter := NewMissionAdapter(mock, &buf)

	result, err := adapter.Daily(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Missions) != 2 {
		t.Errorf("expected 2 missions, got %d", len(result.Missions))
	}

	output := buf.String()
	if !strings.Contains(output, "✓ Generated 2 daily missions for 2024-05-01") {
		t.Errorf("expected generated message, got: %s", output)
	}
	if !strings.Contains(output, "Treino Matinal") || !strings.Contains(output, "150") {
		t.Errorf("expected mission rows, got: %s", output)
	}
}

func TestMissionAdapter_Daily_AlreadyExists(t *testing.T) {
	mock := &mockMissionService{
		generateFn: func(ctx context.Context) (*primary.DailyMissionsResult, error) {
			return &primary.DailyMissionsResult{
				Date:     "2024-05-01",
				Missions: []primary.MissionTemplate{{Title: "Treino Matinal"}, {Title: "Colecionador de Pontos"}},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewMissionAdapter(mock, &buf)

	if _, err := adapter.Daily(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "already exist") {
		t.Errorf("expected already-exist message, got: %s", buf.String())
	}
}

func TestMissionAdapter_Daily_Error(t *testing.T) {
	mock := &mockMissionService{
		generateFn: func(ctx context.Context) (*primary.DailyMissionsResult, error) {
			return nil, errors.New("database is locked")
		},
	}
	var buf bytes.Buffer
	adapter := NewMissionAdapter(mock, &buf)

	_, err := adapter.Daily(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "database is locked") {
		t.Errorf("expected wrapped error, got: %v", err)
	}
}

func TestMissionAdapter_List(t *testing.T) {
	mock := &mockMissionService{
		listMissionsFn: func(ctx context.Context, filters primary.MissionFilters) ([]*primary.Mission, error) {
			return []*primary.Mission{
				{ID: 12, Title: "Treino Matinal (Diária)", Daily: true},
				{ID: 3, Title: "Lenda Viva", HeroName: "Borin", Completed: true},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewMissionAdapter(mock, &buf)

	if err := adapter.List(context.Background(), true, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !mock.lastFilters.DailyOnly || mock.lastFilters.Limit != 5 {
		t.Errorf("expected filters to be passed through, got %+v", mock.lastFilters)
	}

	output := buf.String()
	if !strings.Contains(output, "MISSION-012") {
		t.Errorf("expected formatted mission ID, got: %s", output)
	}
	if !strings.Contains(output, "Borin") {
		t.Errorf("expected hero name, got: %s", output)
	}
}

func TestMissionAdapter_List_Empty(t *testing.T) {
	mock := &mockMissionService{}
	var buf bytes.Buffer
	adapter := NewMissionAdapter(mock, &buf)

	if err := adapter.List(context.Background(), false, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No missions found") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}
