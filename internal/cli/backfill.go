package cli

import (
	"github.com/spf13/cobra"
)

func achievementBackfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Check achievements for every hero",
		Long: `Run the achievement check for every hero in the database.

Use after importing heroes or after the catalog changes.
Safe to run multiple times (idempotent).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			c, err := container(ctx)
			if err != nil {
				return err
			}
			return c.AchievementAdapter().Backfill(ctx)
		},
	}
}
