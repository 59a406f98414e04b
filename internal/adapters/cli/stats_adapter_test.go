package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/example/gamify/internal/ports/primary"
)

// mockStatsService implements primary.StatsService for testing
type mockStatsService struct {
	stats     *primary.SystemStats
	score     int
	breakdown *primary.ScoreBreakdown
	ranking   []*primary.RankingEntry
	err       error
}

func (m *mockStatsService) GetSystemStats(ctx context.Context) (*primary.SystemStats, error) {
	if m.stats == nil && m.err == nil {
		return &primary.SystemStats{
			TopHero:      primary.TopHero{Name: primary.NoTopHeroName},
			RecentEvents: []primary.RecentEvent{},
		}, nil
	}
	return m.stats, m.err
}

func (m *mockStatsService) CalculateHeroScore(ctx context.Context, heroID int64) (int, error) {
	return m.score, m.err
}

func (m *mockStatsService) GetScoreBreakdown(ctx context.Context, heroID int64) (*primary.ScoreBreakdown, error) {
	return m.breakdown, m.err
}

func (m *mockStatsService) GetRanking(ctx context.Context, limit int) ([]*primary.RankingEntry, error) {
	return m.ranking, m.err
}

func TestStatsAdapter_Stats_JSON(t *testing.T) {
	mock := &mockStatsService{}
	var buf bytes.Buffer
	adapter := NewStatsAdapter(mock, &buf)

	if err := adapter.Stats(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	top, ok := decoded["top_hero"].(map[string]any)
	if !ok || top["name"] != "Nenhum" {
		t.Errorf("expected top_hero Nenhum, got %v", decoded["top_hero"])
	}
	if !strings.Contains(buf.String(), `"recent_events": []`) {
		t.Errorf("expected empty recent_events array, got: %s", buf.String())
	}
}

func TestStatsAdapter_Stats_Table(t *testing.T) {
	mock := &mockStatsService{
		stats: &primary.SystemStats{
			TotalHeroes:       3,
			TotalAchievements: 8,
			CompletedMissions: 2,
			TopHero:           primary.TopHero{Name: "Borin", Points: 1200},
			RecentEvents: []primary.RecentEvent{
				{Type: "achievement_earned", Description: "Conquista 'Lenda Viva' obtida", CreatedAt: "2024-05-01 10:00:00"},
			},
		},
	}
	var buf bytes.Buffer
	adapter := NewStatsAdapter(mock, &buf)

	if err := adapter.Stats(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Top hero:           Borin (1200 pts)") {
		t.Errorf("expected top hero line, got: %s", output)
	}
	if !strings.Contains(output, "Conquista 'Lenda Viva' obtida") {
		t.Errorf("expected recent event, got: %s", output)
	}
}

func TestStatsAdapter_Score(t *testing.T) {
	mock := &mockStatsService{score: 127}
	var buf bytes.Buffer
	adapter := NewStatsAdapter(mock, &buf)

	if err := adapter.Score(context.Background(), 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "HERO-001: 127" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestStatsAdapter_Score_Breakdown(t *testing.T) {
	tests := []struct {
		name      string
		breakdown *primary.ScoreBreakdown
		want      []string
	}{
		{
			name: "found",
			breakdown: &primary.ScoreBreakdown{
				HeroID: 1, HeroName: "Aria", Found: true,
				Points: 50, LevelBonus: 20, ExperienceBonus: 2,
				AchievementBonus: 25, MissionBonus: 30,
				Achievements: 1, CompletedMissions: 2, Total: 127,
			},
			want: []string{"HERO-001 Aria", "Achievements (1)", "Missions (2)", "127"},
		},
		{
			name:      "not found",
			breakdown: &primary.ScoreBreakdown{HeroID: 9},
			want:      []string{"HERO-009 not found (score 0)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockStatsService{breakdown: tt.breakdown}
			var buf bytes.Buffer
			adapter := NewStatsAdapter(mock, &buf)

			if err := adapter.Score(context.Background(), tt.breakdown.HeroID, true); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("expected %q in output, got: %s", want, buf.String())
				}
			}
		})
	}
}

func TestStatsAdapter_Ranking(t *testing.T) {
	mock := &mockStatsService{
		ranking: []*primary.RankingEntry{
			{Position: 1, Name: "Borin", Class: "Mago", Level: 10, Experience: 950, Points: 1200, Score: 1319},
			{Position: 2, Name: "Aria", Class: "Guerreira", Level: 2, Experience: 120, Points: 50, Score: 72},
		},
	}
	var buf bytes.Buffer
	adapter := NewStatsAdapter(mock, &buf)

	if err := adapter.Ranking(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if strings.Index(output, "Borin") > strings.Index(output, "Aria") {
		t.Errorf("expected Borin before Aria, got: %s", output)
	}
	if !strings.Contains(output, "1319") {
		t.Errorf("expected score column, got: %s", output)
	}
}

func TestSelfTestAdapter_Run(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSelfTestAdapter(&mockMissionService{}, &mockStatsService{}, &buf)

	if err := adapter.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.HasPrefix(output, "Missões diárias geradas: 2\n") {
		t.Errorf("expected mission count first, got: %s", output)
	}
	if !strings.Contains(output, "Estatísticas do sistema: {") {
		t.Errorf("expected stats JSON, got: %s", output)
	}
	// Non-ASCII text is not escaped.
	if strings.Contains(output, `\u`) {
		t.Errorf("expected non-ASCII kept verbatim, got: %s", output)
	}
	if !strings.Contains(output, `"name": "Nenhum"`) {
		t.Errorf("expected top hero in JSON, got: %s", output)
	}
}
