package cli

import (
	"github.com/spf13/cobra"
)

// DailyCmd returns the daily command
func DailyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Generate today's daily missions",
		Long: `Draw 2 or 3 missions from the daily pool. They are stored only if no
daily mission exists yet for today (UTC); the drawn selection is printed either way.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			c, err := container(ctx)
			if err != nil {
				return err
			}
			_, err = c.MissionAdapter().Daily(ctx)
			return err
		},
	}
}

// MissionCmd returns the mission command
func MissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Inspect missions",
	}

	cmd.AddCommand(missionListCmd())

	return cmd
}

func missionListCmd() *cobra.Command {
	var dailyOnly bool
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List missions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			c, err := container(ctx)
			if err != nil {
				return err
			}
			return c.MissionAdapter().List(ctx, dailyOnly, limit)
		},
	}

	cmd.Flags().BoolVar(&dailyOnly, "daily", false, "only daily missions")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of missions (0 for all)")

	return cmd
}
