package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	corehero "github.com/example/gamify/internal/core/hero"
	"github.com/example/gamify/internal/ports/primary"
)

// AchievementAdapter translates CLI operations to AchievementService calls.
type AchievementAdapter struct {
	service primary.AchievementService
	out     io.Writer
}

// NewAchievementAdapter creates a new AchievementAdapter with the given service.
func NewAchievementAdapter(service primary.AchievementService, out io.Writer) *AchievementAdapter {
	return &AchievementAdapter{
		service: service,
		out:     out,
	}
}

// Check grants any newly earned achievements and prints them.
func (a *AchievementAdapter) Check(ctx context.Context, heroID int64) error {
	granted, err := a.service.CheckAchievements(ctx, heroID)
	if err != nil {
		return fmt.Errorf("failed to check achievements: %w", err)
	}

	if len(granted) == 0 {
		fmt.Fprintf(a.out, "No new achievements for %s\n", corehero.FormatHeroID(heroID))
		return nil
	}

	fmt.Fprintf(a.out, "%s %s earned %d achievement(s):\n", color.GreenString("✓"), corehero.FormatHeroID(heroID), len(granted))
	for _, def := range granted {
		fmt.Fprintf(a.out, "  %s %s - %s\n", def.Icon, color.New(color.Bold).Sprint(def.Name), def.Description)
	}
	return nil
}

// List prints the achievements a hero holds.
func (a *AchievementAdapter) List(ctx context.Context, heroID int64) error {
	achievements, err := a.service.ListHeroAchievements(ctx, heroID)
	if err != nil {
		return fmt.Errorf("failed to list achievements: %w", err)
	}

	if len(achievements) == 0 {
		fmt.Fprintln(a.out, "No achievements found")
		return nil
	}

	fmt.Fprintf(a.out, "\nAchievements for %s:\n", corehero.FormatHeroID(heroID))
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, ach := range achievements {
		fmt.Fprintf(a.out, "%s %-22s %s  %s\n", ach.Icon, ach.Name, ach.EarnedAt, ach.Description)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Backfill runs the achievement check for every hero and prints a summary.
func (a *AchievementAdapter) Backfill(ctx context.Context) error {
	result, err := a.service.BackfillAchievements(ctx)
	if err != nil {
		return fmt.Errorf("failed to backfill achievements: %w", err)
	}

	ids := make([]int64, 0, len(result.GrantedByHero))
	for id := range result.GrantedByHero {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		fmt.Fprintf(a.out, "  %s: %s\n", corehero.FormatHeroID(id), strings.Join(result.GrantedByHero[id], ", "))
	}
	fmt.Fprintf(a.out, "%s Checked %d heroes, granted %d achievements\n",
		color.GreenString("✓"), result.HeroesChecked, result.TotalGranted)

	return nil
}
