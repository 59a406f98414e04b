package cli

import (
	"github.com/spf13/cobra"

	corehero "github.com/example/gamify/internal/core/hero"
)

// AchievementCmd returns the achievement command
func AchievementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievement",
		Short: "Evaluate and list hero achievements",
	}

	cmd.AddCommand(achievementCheckCmd())
	cmd.AddCommand(achievementListCmd())
	cmd.AddCommand(achievementBackfillCmd())

	return cmd
}

func achievementCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [hero-id]",
		Short: "Grant any achievements the hero newly qualifies for",
		Long: `Evaluate the achievement catalog against the hero's current level and points.
Each new grant is stored and logged as an achievement_earned event.
Unknown heroes are not an error: nothing is granted.`,
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
			return c.AchievementAdapter().Check(ctx, heroID)
		},
	}
}

func achievementListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [hero-id]",
		Short: "List a hero's achievements",
		Args:  cobra.ExactArgs(1),
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
			return c.AchievementAdapter().List(ctx, heroID)
		},
	}
}
