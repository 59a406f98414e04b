package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/gamify/internal/app"
	corehero "github.com/example/gamify/internal/core/hero"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show system statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			c, err := container(ctx)
			if err != nil {
				return err
			}
			return c.StatsAdapter().Stats(ctx, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as indented JSON")

	return cmd
}

// ScoreCmd returns the score command
func ScoreCmd() *cobra.Command {
	var breakdown bool

	cmd := &cobra.Command{
		Use:   "score [hero-id]",
		Short: "Show a hero's composite score",
		Long: `Score = points + level×10 + experience/50 + achievements×25 + completed missions×15.
Unknown heroes score 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			heroID, err := corehero.ParseHeroID(args[0])
			if err != nil {
				return err
			}

			ctx := NewContext()
			c, err := container(ctx)
			if err != nil {
				return err
			}
			return c.StatsAdapter().Score(ctx, heroID, breakdown)
		},
	}

	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "show each score component")

	return cmd
}

// RankingCmd returns the ranking command
func RankingCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Show the hero leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			c, err := container(ctx)
			if err != nil {
				return err
			}
			return c.StatsAdapter().Ranking(ctx, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", app.DefaultRankingLimit, "number of heroes")

	return cmd
}

// SelfTestCmd returns the selftest command
func SelfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Generate daily missions and print statistics as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			c, err := container(ctx)
			if err != nil {
				return err
			}
			return c.SelfTestAdapter(os.Stdout).Run(ctx)
		},
	}
}
