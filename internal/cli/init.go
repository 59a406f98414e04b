package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/gamify/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var withHostTables, seed bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the gamification schema",
		Long: `Create the achievements and system_events tables in the configured database.
Safe to run repeatedly: existing tables and rows are left untouched.

--with-host-tables also creates the heroes and missions tables owned by the
hero management application, for local development databases.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed && !withHostTables {
				return fmt.Errorf("--seed requires --with-host-tables")
			}

			ctx := NewContext()
			c, err := container(ctx)
			if err != nil {
				return err
			}

			version, err := db.CurrentVersion(ctx, c.DB())
			if err != nil {
				return err
			}
			fmt.Printf("✓ Schema ready (version %d)\n", version)

			if withHostTables {
				if err := db.CreateHostTables(ctx, c.DB()); err != nil {
					return err
				}
				fmt.Println("✓ Host tables ready (heroes, missions)")
			}

			if seed {
				if err := db.SeedFixtures(ctx, c.DB()); err != nil {
					return fmt.Errorf("failed to seed database: %w", err)
				}
				fmt.Println("✓ Sample heroes and missions added")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&withHostTables, "with-host-tables", false, "also create the heroes and missions tables")
	cmd.Flags().BoolVar(&seed, "seed", false, "insert sample heroes and missions (requires --with-host-tables)")

	return cmd
}
