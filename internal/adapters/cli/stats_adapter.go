package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	corehero "github.com/example/gamify/internal/core/hero"
	"github.com/example/gamify/internal/ports/primary"
)

// StatsAdapter translates CLI operations to StatsService calls.
type StatsAdapter struct {
	service primary.StatsService
	out     io.Writer
}

// NewStatsAdapter creates a new StatsAdapter with the given service.
func NewStatsAdapter(service primary.StatsService, out io.Writer) *StatsAdapter {
	return &StatsAdapter{
		service: service,
		out:     out,
	}
}

// Stats prints aggregate statistics, as a table or as indented JSON.
func (a *StatsAdapter) Stats(ctx context.Context, asJSON bool) error {
	stats, err := a.service.GetSystemStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	if asJSON {
		return writeJSON(a.out, stats)
	}

	bold := color.New(color.Bold)
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Heroes:             %d\n", stats.TotalHeroes)
	fmt.Fprintf(a.out, "Achievements:       %d\n", stats.TotalAchievements)
	fmt.Fprintf(a.out, "Completed missions: %d\n", stats.CompletedMissions)
	fmt.Fprintf(a.out, "Top hero:           %s (%d pts)\n", bold.Sprint(stats.TopHero.Name), stats.TopHero.Points)

	if len(stats.RecentEvents) > 0 {
		fmt.Fprintln(a.out, "\nRecent events:")
		fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
		for _, e := range stats.RecentEvents {
			fmt.Fprintf(a.out, "%-19s %-20s %s\n", e.CreatedAt, e.Type, e.Description)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

// Score prints a hero's composite score, optionally with its components.
func (a *StatsAdapter) Score(ctx context.Context, heroID int64, detailed bool) error {
	if !detailed {
		score, err := a.service.CalculateHeroScore(ctx, heroID)
		if err != nil {
			return fmt.Errorf("failed to calculate score: %w", err)
		}
		fmt.Fprintf(a.out, "%s: %d\n", corehero.FormatHeroID(heroID), score)
		return nil
	}

	b, err := a.service.GetScoreBreakdown(ctx, heroID)
	if err != nil {
		return fmt.Errorf("failed to calculate score: %w", err)
	}
	if !b.Found {
		fmt.Fprintf(a.out, "%s not found (score 0)\n", corehero.FormatHeroID(heroID))
		return nil
	}

	fmt.Fprintf(a.out, "\n%s %s\n", corehero.FormatHeroID(b.HeroID), b.HeroName)
	fmt.Fprintln(a.out, "────────────────────────────────")
	fmt.Fprintf(a.out, "%-22s %8d\n", "Points", b.Points)
	fmt.Fprintf(a.out, "%-22s %8d\n", "Level bonus", b.LevelBonus)
	fmt.Fprintf(a.out, "%-22s %8d\n", "Experience bonus", b.ExperienceBonus)
	fmt.Fprintf(a.out, "%-22s %8d\n", fmt.Sprintf("Achievements (%d)", b.Achievements), b.AchievementBonus)
	fmt.Fprintf(a.out, "%-22s %8d\n", fmt.Sprintf("Missions (%d)", b.CompletedMissions), b.MissionBonus)
	fmt.Fprintln(a.out, "────────────────────────────────")
	fmt.Fprintf(a.out, "%-22s %8s\n\n", "Total", color.New(color.Bold).Sprint(b.Total))

	return nil
}

// Ranking prints the hero leaderboard.
func (a *StatsAdapter) Ranking(ctx context.Context, limit int) error {
	entries, err := a.service.GetRanking(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to get ranking: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No heroes found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-4s %-16s %-12s %5s %7s %7s %7s\n", "#", "NAME", "CLASS", "LVL", "XP", "PTS", "SCORE")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, e := range entries {
		name := fmt.Sprintf("%-16s", e.Name)
		if e.Position == 1 {
			name = color.New(color.FgYellow).Sprint(name)
		}
		fmt.Fprintf(a.out, "%-4d %s %-12s %5d %7d %7d %7d\n", e.Position, name, e.Class, e.Level, e.Experience, e.Points, e.Score)
	}
	fmt.Fprintln(a.out)

	return nil
}

// SelfTestAdapter runs the end-to-end smoke check: daily generation then stats.
type SelfTestAdapter struct {
	missions primary.MissionService
	stats    primary.StatsService
	out      io.Writer
}

// NewSelfTestAdapter creates a new SelfTestAdapter.
func NewSelfTestAdapter(missions primary.MissionService, stats primary.StatsService, out io.Writer) *SelfTestAdapter {
	return &SelfTestAdapter{
		missions: missions,
		stats:    stats,
		out:      out,
	}
}

// Run generates daily missions, prints their count, then prints stats as JSON.
func (a *SelfTestAdapter) Run(ctx context.Context) error {
	daily, err := a.missions.GenerateDailyMissions(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate daily missions: %w", err)
	}
	fmt.Fprintln(a.out, "Missões diárias geradas:", len(daily.Missions))

	stats, err := a.stats.GetSystemStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}
	fmt.Fprint(a.out, "Estatísticas do sistema: ")
	return writeJSON(a.out, stats)
}

// writeJSON writes v as two-space indented JSON with non-ASCII text kept as is.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
