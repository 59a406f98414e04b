package cli

import (
	"github.com/spf13/cobra"

	coreevent "github.com/example/gamify/internal/core/event"
	corehero "github.com/example/gamify/internal/core/hero"
)

// EventCmd returns the event command
func EventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Write to and read the system event log",
	}

	cmd.AddCommand(eventLogCmd())
	cmd.AddCommand(eventRecentCmd())

	return cmd
}

func eventLogCmd() *cobra.Command {
	var heroArg string
	var data []string

	cmd := &cobra.Command{
		Use:   "log [type] [description]",
		Short: "Append an event",
		Long: `Append an event to the system log. Any non-blank event type is accepted.

Payload entries are given as --data key=value. Values that are valid JSON
(numbers, booleans, quoted strings) keep their type.

Examples:
  gamify event log level_up "Aria reached level 3" --hero 1 --data level=3
  gamify event log system_start`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := coreevent.ValidateEventType(args[0]); err != nil {
				return err
			}

			var heroID int64
			if heroArg != "" {
				id, err := corehero.ParseHeroID(heroArg)
				if err != nil {
					return err
				}
				heroID = id
			}

			description := ""
			if len(args) > 1 {
				description = args[1]
			}

			ctx := NewContext()
			c, err := container(ctx)
			if err != nil {
				return err
			}
			return c.EventAdapter().Log(ctx, args[0], description, heroID, data)
		},
	}

	cmd.Flags().StringVar(&heroArg, "hero", "", "hero the event is about")
	cmd.Flags().StringArrayVar(&data, "data", nil, "payload entry as key=value (repeatable)")

	return cmd
}

func eventRecentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the newest events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			c, err := container(ctx)
			if err != nil {
				return err
			}
			return c.EventAdapter().Recent(ctx, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", coreevent.DefaultRecentLimit, "number of events")

	return cmd
}
