package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/gamify/internal/cli"
	"github.com/example/gamify/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "gamify",
		Short:   "gamify - missions, achievements and scoring for heroes",
		Version: version.String(),
		Long: `gamify manages the gamification layer of a hero-progression database:
daily missions, achievements, the system event log, statistics and hero scores.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.Setup,
	}
	cli.RegisterGlobalFlags(rootCmd)

	// Schema
	rootCmd.AddCommand(cli.InitCmd())

	// Missions
	rootCmd.AddCommand(cli.DailyCmd())
	rootCmd.AddCommand(cli.MissionCmd())

	// Achievements and events
	rootCmd.AddCommand(cli.AchievementCmd())
	rootCmd.AddCommand(cli.EventCmd())

	// Statistics
	rootCmd.AddCommand(cli.StatsCmd())
	rootCmd.AddCommand(cli.ScoreCmd())
	rootCmd.AddCommand(cli.RankingCmd())
	rootCmd.AddCommand(cli.SelfTestCmd())

	err := rootCmd.Execute()
	cli.Teardown()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
