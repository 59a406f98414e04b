// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	coremission "github.com/example/gamify/internal/core/mission"
	"github.com/example/gamify/internal/ports/primary"
)

// MissionAdapter is a thin adapter that translates CLI operations to MissionService calls.
// It depends only on the MissionService interface, enabling easy testing with mocks.
type MissionAdapter struct {
	service primary.MissionService
	out     io.Writer
}

// NewMissionAdapter creates a new MissionAdapter with the given service.
func NewMissionAdapter(service primary.MissionService, out io.Writer) *MissionAdapter {
	return &MissionAdapter{
		service: service,
		out:     out,
	}
}

// Daily generates today's daily missions and prints the selection.
func (a *MissionAdapter) Daily(ctx context.Context) (*primary.DailyMissionsResult, error) {
	result, err := a.service.GenerateDailyMissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate daily missions: %w", err)
	}

	if result.Inserted {
		fmt.Fprintf(a.out, "%s Generated %d daily missions for %s\n", color.GreenString("✓"), len(result.Missions), result.Date)
	} else {
		fmt.Fprintf(a.out, "Daily missions for %s already exist; nothing stored\n", result.Date)
	}

	fmt.Fprintf(a.out, "\n%-26s %-10s %6s %6s\n", "TITLE", "DIFFICULTY", "XP", "PTS")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, m := range result.Missions {
		fmt.Fprintf(a.out, "%-26s %-10s %6d %6d\n", m.Title, m.Difficulty, m.RewardXP, m.RewardPoints)
	}
	fmt.Fprintln(a.out)

	return result, nil
}

// List lists missions, optionally only daily ones.
func (a *MissionAdapter) List(ctx context.Context, dailyOnly bool, limit int) error {
	missions, err := a.service.ListMissions(ctx, primary.MissionFilters{
		DailyOnly: dailyOnly,
		Limit:     limit,
	})
	if err != nil {
		return fmt.Errorf("failed to list missions: %w", err)
	}

	if len(missions) == 0 {
		fmt.Fprintln(a.out, "No missions found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-13s %-4s %-12s %s\n", "ID", "DONE", "HERO", "TITLE")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, m := range missions {
		done := " "
		if m.Completed {
			done = color.GreenString("✓")
		}
		hero := m.HeroName
		if hero == "" {
			hero = "-"
		}
		title := m.Title
		if m.Daily {
			title = color.CyanString(title)
		}
		fmt.Fprintf(a.out, "%-13s %-4s %-12s %s\n", coremission.FormatMissionID(m.ID), done, hero, title)
	}
	fmt.Fprintln(a.out)

	return nil
}
